// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homog/internal/scene"
	"github.com/katalvlaran/homog/matrix"
	"github.com/katalvlaran/homog/term"
)

// app carries the flags shared by every subcommand.
type app struct {
	scenePath string
	expand    bool

	sc *scene.Scene
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "homog",
		Short:         "exact 4x4 homogeneous-coordinate algebra",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.scenePath == "" {
				return fmt.Errorf("no scene file: pass --scene")
			}
			sc, err := scene.Load(a.scenePath, term.Default)
			if err != nil {
				return err
			}
			a.sc = sc
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.scenePath, "scene", "f", "", "scene file path (yaml)")
	root.PersistentFlags().BoolVar(&a.expand, "expand", false, "multiply out scalar results")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list matrix and vector names",
			Args:  cobra.NoArgs,
			RunE:  a.runList,
		},
		&cobra.Command{
			Use:   "show [name]",
			Short: "print a matrix or vector",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runShow,
		},
		&cobra.Command{
			Use:   "det [matrix]",
			Short: "determinant (Laplace expansion along row 0)",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runDet,
		},
		&cobra.Command{
			Use:   "minor [matrix] [row] [col]",
			Short: "minor at (row, col)",
			Args:  cobra.ExactArgs(3),
			RunE:  a.runMinor,
		},
		&cobra.Command{
			Use:   "without [matrix] [row] [col]",
			Short: "3x3 matrix with row and col removed",
			Args:  cobra.ExactArgs(3),
			RunE:  a.runWithout,
		},
		a.unaryMatrixCmd("minors", "matrix of minors", matrix.Matrix4x4.Minors),
		a.unaryMatrixCmd("cofactors", "checkerboard sign applied to the entries", matrix.Matrix4x4.Cofactors),
		a.unaryMatrixCmd("transpose", "transpose", matrix.Matrix4x4.Transpose),
		&cobra.Command{
			Use:   "mul [a] [b]",
			Short: "matrix product a·b",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runMul,
		},
		&cobra.Command{
			Use:   "transform [matrix] [vector]",
			Short: "matrix·vector",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runTransform,
		},
		&cobra.Command{
			Use:   "normalize [vector]",
			Short: "perspective divide (x/w, y/w, z/w, w)",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runNormalize,
		},
		&cobra.Command{
			Use:   "scale [name] [factor]",
			Short: "multiply a matrix or vector by a literal factor",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runScale,
		},
		&cobra.Command{
			Use:   "divide [name] [factor]",
			Short: "divide a matrix or vector by a literal factor",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runDivide,
		},
	)

	return root
}

func (a *app) unaryMatrixCmd(use, short string, op func(matrix.Matrix4x4) matrix.Matrix4x4) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [matrix]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.sc.Matrix(args[0])
			if err != nil {
				return err
			}
			return matrix.Fprint(cmd.OutOrStdout(), use+" "+args[0], op(m))
		},
	}
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	for _, n := range a.sc.MatrixNames() {
		fmt.Fprintf(w, "matrix %s\n", n)
	}
	for _, n := range a.sc.VectorNames() {
		fmt.Fprintf(w, "vector %s\n", n)
	}

	return nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	if m, err := a.sc.Matrix(args[0]); err == nil {
		return matrix.Fprint(cmd.OutOrStdout(), args[0], m)
	}
	v, err := a.sc.Vector(args[0])
	if err != nil {
		return fmt.Errorf("%q is neither a matrix nor a vector: %w", args[0], scene.ErrUnknownName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)

	return nil
}

func (a *app) runDet(cmd *cobra.Command, args []string) error {
	m, err := a.sc.Matrix(args[0])
	if err != nil {
		return err
	}

	return a.printScalar(cmd.OutOrStdout(), "det "+args[0], m.Determinant())
}

func (a *app) runMinor(cmd *cobra.Command, args []string) error {
	m, err := a.sc.Matrix(args[0])
	if err != nil {
		return err
	}
	row, col, err := parseRowCol(args[1], args[2])
	if err != nil {
		return err
	}

	return a.printScalar(cmd.OutOrStdout(), fmt.Sprintf("minor %s (%d,%d)", args[0], row, col), m.Minor(row, col))
}

func (a *app) runWithout(cmd *cobra.Command, args []string) error {
	m, err := a.sc.Matrix(args[0])
	if err != nil {
		return err
	}
	row, col, err := parseRowCol(args[1], args[2])
	if err != nil {
		return err
	}

	return matrix.Fprint(cmd.OutOrStdout(), fmt.Sprintf("%s without (%d,%d)", args[0], row, col), m.Without(row, col))
}

func (a *app) runMul(cmd *cobra.Command, args []string) error {
	left, err := a.sc.Matrix(args[0])
	if err != nil {
		return err
	}
	right, err := a.sc.Matrix(args[1])
	if err != nil {
		return err
	}

	return matrix.Fprint(cmd.OutOrStdout(), args[0]+"·"+args[1], left.MultiplyMatrix(right))
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	m, err := a.sc.Matrix(args[0])
	if err != nil {
		return err
	}
	v, err := a.sc.Vector(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s·%s = %s\n", args[0], args[1], m.Transform(v))

	return nil
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	v, err := a.sc.Vector(args[0])
	if err != nil {
		return err
	}
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "normalize %s = %s\n", args[0], n)

	return nil
}

func (a *app) runScale(cmd *cobra.Command, args []string) error {
	factor, err := scene.ParseTerm(term.Default, args[1])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	label := args[0] + "·" + factor.String()
	if m, err := a.sc.Matrix(args[0]); err == nil {
		return matrix.Fprint(w, label, m.ScaleBy(factor))
	}
	v, err := a.sc.Vector(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", label, v.ScaleBy(factor))

	return nil
}

func (a *app) runDivide(cmd *cobra.Command, args []string) error {
	factor, err := scene.ParseTerm(term.Default, args[1])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	label := args[0] + "/" + factor.String()
	if m, err := a.sc.Matrix(args[0]); err == nil {
		q, err := m.DivideBy(factor)
		if err != nil {
			return err
		}
		return matrix.Fprint(w, label, q)
	}
	v, err := a.sc.Vector(args[0])
	if err != nil {
		return err
	}
	q, err := v.DivideBy(factor)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", label, q)

	return nil
}

func (a *app) printScalar(w io.Writer, label string, t term.Term) error {
	if a.expand {
		t = term.Expand(t)
	}
	_, err := fmt.Fprintf(w, "%s = %s\n", label, t)

	return err
}

// parseRowCol validates CLI indices so the library's index panics stay
// unreachable from user input.
func parseRowCol(rowArg, colArg string) (int, int, error) {
	row, err := parseIndex("row", rowArg)
	if err != nil {
		return 0, 0, err
	}
	col, err := parseIndex("col", colArg)
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

func parseIndex(what, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, arg, err)
	}
	if i < 0 || i > 3 {
		return 0, fmt.Errorf("%s %d: %w", what, i, matrix.ErrOutOfRange)
	}

	return i, nil
}
