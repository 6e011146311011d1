package policy

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Reporter receives every solution emitted by a policy. The slice is
// owned by the reporter. A non-nil error aborts the search.
type Reporter func(solution []int) error

// Discard drops every solution.
func Discard(_ []int) error {
	return nil
}

// Format renders a solution in its human-readable form, e.g. [1, 2].
func Format(solution []int) string {
	return "[" + strings.Join(lo.Map(solution, func(n int, _ int) string {
		return strconv.Itoa(n)
	}), ", ") + "]"
}

// Print writes one formatted solution per line to w.
func Print(w io.Writer) Reporter {
	return func(solution []int) error {
		_, err := fmt.Fprintln(w, Format(solution))
		return err
	}
}

// Collect appends every solution to dst.
func Collect(dst *[][]int) Reporter {
	return func(solution []int) error {
		*dst = append(*dst, append([]int{}, solution...))
		return nil
	}
}

// JSONLines writes every solution to w as a JSON array on its own line.
func JSONLines(w io.Writer) Reporter {
	enc := json.NewEncoder(w)
	return func(solution []int) error {
		return enc.Encode(solution)
	}
}

// YAML writes every solution to w as an item of a YAML sequence, so
// that the whole output is one YAML document.
func YAML(w io.Writer) Reporter {
	return func(solution []int) error {
		out, err := yaml.Marshal([][]int{solution})
		if err != nil {
			return fmt.Errorf("error encoding solution %v: %w", solution, err)
		}
		_, err = w.Write(out)
		return err
	}
}
