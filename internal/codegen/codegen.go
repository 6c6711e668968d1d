// Package codegen lowers minilang IR into AT&T-syntax x86-64 assembly
// targeting the System V AMD64 calling convention (spec.md §4.5). It makes
// no attempt at register allocation: every IR variable lives in its own
// stack slot for the lifetime of the function, in the order it is first
// referenced.
package codegen

import (
	"fmt"
	"strings"

	"github.com/sunholo/minilang/internal/errors"
	"github.com/sunholo/minilang/internal/ir"
)

const phase = "codegen"

// argRegisters are the System V integer/pointer argument registers, in
// order. minilang has no more than six-argument calls (errors.SEM001).
var argRegisters = []string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// intrinsics maps an operator's IR name to the instructions that compute
// it, given the two (or one, for unary operators) argument operands as
// stack-slot references; each leaves its result in %rax.
var intrinsics = map[string]func(args []string) []string{
	"+": func(a []string) []string { return []string{fmt.Sprintf("    movq %s, %%rax", a[0]), fmt.Sprintf("    addq %s, %%rax", a[1])} },
	"-": func(a []string) []string { return []string{fmt.Sprintf("    movq %s, %%rax", a[0]), fmt.Sprintf("    subq %s, %%rax", a[1])} },
	"*": func(a []string) []string { return []string{fmt.Sprintf("    movq %s, %%rax", a[0]), fmt.Sprintf("    imulq %s, %%rax", a[1])} },
	"/": func(a []string) []string {
		return []string{
			fmt.Sprintf("    movq %s, %%rax", a[0]),
			"    cqto",
			fmt.Sprintf("    idivq %s", a[1]),
		}
	},
	"%": func(a []string) []string {
		return []string{
			fmt.Sprintf("    movq %s, %%rax", a[0]),
			"    cqto",
			fmt.Sprintf("    idivq %s", a[1]),
			"    movq %rdx, %rax",
		}
	},
	"<":  cmpIntrinsic("setl"),
	">":  cmpIntrinsic("setg"),
	"<=": cmpIntrinsic("setle"),
	">=": cmpIntrinsic("setge"),
	"==": cmpIntrinsic("sete"),
	"!=": cmpIntrinsic("setne"),
	"unary_-": func(a []string) []string {
		return []string{fmt.Sprintf("    movq %s, %%rax", a[0]), "    negq %rax"}
	},
	"unary_not": func(a []string) []string {
		return []string{fmt.Sprintf("    movq %s, %%rax", a[0]), "    xorq $1, %rax"}
	},
}

func cmpIntrinsic(set string) func([]string) []string {
	return func(a []string) []string {
		return []string{
			fmt.Sprintf("    movq %s, %%rax", a[0]),
			fmt.Sprintf("    cmpq %s, %%rax", a[1]),
			"    movq $0, %rax",
			fmt.Sprintf("    %s %%al", set),
		}
	}
}

// externs are the runtime-provided symbols every compiled program may call
// but never defines itself.
var externs = []string{"print_int", "print_bool", "read_int"}

// Generate assembles a complete AT&T-syntax program from the lowered
// functions, with one .globl label per function: user functions are
// emitted as "fn_<name>", and the lowered top-level code is emitted
// directly under the label "main", which the C start files call since we
// link against them for print_int/read_int support (SPEC_FULL.md §6).
func Generate(funcs []ir.Function) (string, error) {
	var b strings.Builder

	b.WriteString("    .text\n")
	for _, fn := range funcs {
		b.WriteString(fmt.Sprintf("    .globl %s\n", asmName(fn.Name)))
	}
	for _, name := range externs {
		b.WriteString(fmt.Sprintf("    .extern %s\n", name))
	}
	b.WriteString("\n")

	for _, fn := range funcs {
		asm, err := generateFunction(fn)
		if err != nil {
			return "", err
		}
		b.WriteString(asm)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func asmName(fn string) string {
	if fn == "main" {
		return "main"
	}
	return "fn_" + fn
}

func generateFunction(fn ir.Function) (string, error) {
	locals := newLocals(fn.Instructions)
	locals.endLabel = fmt.Sprintf(".Lend_%s", asmName(fn.Name))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s:\n", asmName(fn.Name)))
	b.WriteString("    pushq %rbp\n")
	b.WriteString("    movq %rsp, %rbp\n")
	frameSize := alignTo16(locals.stackUsed)
	if frameSize > 0 {
		b.WriteString(fmt.Sprintf("    subq $%d, %%rsp\n", frameSize))
	}

	for _, instr := range fn.Instructions {
		lines, err := generateInstruction(instr, locals)
		if err != nil {
			return "", err
		}
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}

	if fn.Name == "main" {
		// main's return value is the process exit status: a program that
		// runs to the end of its top-level code exits with status 0.
		b.WriteString("    movq $0, %rax\n")
	}
	b.WriteString(fmt.Sprintf(".Lend_%s:\n", asmName(fn.Name)))
	b.WriteString("    movq %rbp, %rsp\n")
	b.WriteString("    popq %rbp\n")
	b.WriteString("    ret\n")
	return b.String(), nil
}

func alignTo16(n int) int {
	if n%16 == 0 {
		return n
	}
	return n + (16 - n%16)
}

func generateInstruction(instr ir.Instruction, locals *Locals) ([]string, error) {
	switch in := instr.(type) {
	case ir.Label:
		return []string{fmt.Sprintf(".L%s:", in.Name)}, nil

	case ir.LoadIntConst:
		dest := locals.ref(in.Dest)
		if in.Value >= -(1<<31) && in.Value < (1<<31) {
			return []string{fmt.Sprintf("    movq $%d, %s", in.Value, dest)}, nil
		}
		return []string{
			fmt.Sprintf("    movabsq $%d, %%rax", in.Value),
			fmt.Sprintf("    movq %%rax, %s", dest),
		}, nil

	case ir.LoadBoolConst:
		v := 0
		if in.Value {
			v = 1
		}
		return []string{fmt.Sprintf("    movq $%d, %s", v, locals.ref(in.Dest))}, nil

	case ir.LoadParam:
		if in.Index >= len(argRegisters) {
			return nil, errors.New(errors.SEM001, phase, in.Loc(), "parameter index %d exceeds the six supported argument registers", in.Index)
		}
		return []string{fmt.Sprintf("    movq %s, %s", argRegisters[in.Index], locals.ref(in.Dest))}, nil

	case ir.Copy:
		return []string{
			fmt.Sprintf("    movq %s, %%rax", locals.ref(in.Source)),
			fmt.Sprintf("    movq %%rax, %s", locals.ref(in.Dest)),
		}, nil

	case ir.Jump:
		return []string{fmt.Sprintf("    jmp .L%s", in.Label)}, nil

	case ir.CondJump:
		return []string{
			fmt.Sprintf("    movq %s, %%rax", locals.ref(in.Cond)),
			"    cmpq $0, %rax",
			fmt.Sprintf("    jne .L%s", in.Then),
			fmt.Sprintf("    jmp .L%s", in.Else),
		}, nil

	case ir.Call:
		return generateCall(in, locals)

	case ir.Return:
		// endLabel is recovered from the locals table, which is scoped per
		// function; the epilogue label is emitted once per function, so a
		// bare jump to it from anywhere in the body is always valid.
		return []string{
			fmt.Sprintf("    movq %s, %%rax", locals.ref(in.Value)),
			fmt.Sprintf("    jmp %s", locals.endLabel),
		}, nil

	default:
		return nil, errors.New(errors.TYP001, phase, instr.Loc(), "unsupported IR instruction %T", instr)
	}
}

func generateCall(in ir.Call, locals *Locals) ([]string, error) {
	if len(in.Args) > len(argRegisters) {
		return nil, errors.New(errors.SEM001, phase, in.Loc(), "call to %q has %d arguments, at most %d are supported", in.Fun, len(in.Args), len(argRegisters))
	}

	if mk, ok := intrinsics[string(in.Fun)]; ok {
		regs := make([]string, len(in.Args))
		for i, a := range in.Args {
			regs[i] = locals.ref(a)
		}
		lines := mk(regs)
		lines = append(lines, fmt.Sprintf("    movq %%rax, %s", locals.ref(in.Dest)))
		return lines, nil
	}

	var lines []string
	for i, a := range in.Args {
		lines = append(lines, fmt.Sprintf("    movq %s, %s", locals.ref(a), argRegisters[i]))
	}
	lines = append(lines, "    xorl %eax, %eax", fmt.Sprintf("    call %s", callTarget(in.Fun)))
	lines = append(lines, fmt.Sprintf("    movq %%rax, %s", locals.ref(in.Dest)))
	return lines, nil
}

func callTarget(fn ir.Var) string {
	name := string(fn)
	for _, e := range externs {
		if name == e {
			return name
		}
	}
	return asmName(name)
}
