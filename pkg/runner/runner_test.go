package runner_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/operator-framework/backtrack/pkg/backtrack/search"
	"github.com/operator-framework/backtrack/pkg/config"
	"github.com/operator-framework/backtrack/pkg/policy"
	"github.com/operator-framework/backtrack/pkg/runner"
)

func TestRunner(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Runner Suite")
}

var _ = Describe("Run", func() {
	var solutions [][]int

	BeforeEach(func() {
		solutions = nil
	})

	collect := func() runner.Option {
		return runner.WithReporter(policy.Collect(&solutions))
	}

	It("should emit every subset of two elements exactly once", func() {
		result, err := runner.Run(config.New(config.Subsets, 2), collect())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(ConsistOf([]int{}, []int{1}, []int{2}, []int{1, 2}))
		Expect(result.Emitted).To(Equal(4))
		Expect(result.Stopped).To(BeFalse())
	})

	It("should emit every permutation of three elements exactly once", func() {
		result, err := runner.Run(config.New(config.Permutations, 3), collect())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(ConsistOf(
			[]int{0, 1, 2}, []int{0, 2, 1}, []int{1, 0, 2},
			[]int{1, 2, 0}, []int{2, 0, 1}, []int{2, 1, 0},
		))
		Expect(result.Emitted).To(Equal(6))
	})

	DescribeTable("should emit the empty solution for a zero depth",
		func(kind config.DomainKind) {
			_, err := runner.Run(config.New(kind, 0), collect())
			Expect(err).ToNot(HaveOccurred())
			Expect(solutions).To(Equal([][]int{{}}))
		},
		Entry("subsets", config.Subsets),
		Entry("permutations", config.Permutations),
	)

	It("should stop after the configured limit", func() {
		cfg := config.New(config.Permutations, 4)
		cfg.Limit = 5
		result, err := runner.Run(cfg, collect())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(HaveLen(5))
		Expect(result.Emitted).To(Equal(5))
		Expect(result.Stopped).To(BeTrue())
	})

	It("should apply the limit afresh to every run of the same config", func() {
		cfg := config.New(config.Subsets, 3)
		cfg.Limit = 2
		for range 3 {
			solutions = nil
			result, err := runner.Run(cfg, collect())
			Expect(err).ToNot(HaveOccurred())
			Expect(solutions).To(Equal([][]int{{1, 2, 3}, {1, 2}}))
			Expect(result.Emitted).To(Equal(2))
			Expect(result.Stopped).To(BeTrue())
		}
	})

	It("should produce identical sequences on repeated runs", func() {
		_, err := runner.Run(config.New(config.Subsets, 4), collect())
		Expect(err).ToNot(HaveOccurred())
		first := solutions
		solutions = nil
		_, err = runner.Run(config.New(config.Subsets, 4), collect())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(Equal(first))
	})

	It("should reject an invalid configuration before searching", func() {
		called := false
		result, err := runner.Run(config.New("combinations", 2), runner.WithReporter(func(_ []int) error {
			called = true
			return nil
		}))
		Expect(err).To(HaveOccurred())
		Expect(config.IsConfigurationError(err)).To(BeTrue())
		Expect(result).To(BeNil())
		Expect(called).To(BeFalse())
	})

	It("should reject a missing depth", func() {
		_, err := runner.Run(config.Config{DomainKind: config.Subsets}, collect())
		Expect(config.IsConfigurationError(err)).To(BeTrue())
		Expect(solutions).To(BeEmpty())
	})

	It("should return reporter errors unmodified", func() {
		errClosed := errors.New("closed")
		result, err := runner.Run(config.New(config.Subsets, 3), runner.WithReporter(func(_ []int) error {
			return errClosed
		}))
		Expect(err).To(BeIdenticalTo(errClosed))
		Expect(result).To(BeNil())
	})

	It("should pass engine options through", func() {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		_, err := runner.Run(config.New(config.Permutations, 2),
			collect(),
			runner.WithLogger(logger),
			runner.WithEngineOptions(
				search.WithInvariantChecks(),
				search.WithExplicitStack(),
				search.WithTracer(search.LoggingTracer{Logger: logger}),
			),
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(Equal([][]int{{0, 1}, {1, 0}}))
		Expect(buf.String()).To(ContainSubstring(`"event":"descend"`))
		Expect(buf.String()).To(ContainSubstring(`"message":"search finished"`))
	})

	It("should fail when an engine option is invalid", func() {
		_, err := runner.Run(config.New(config.Subsets, 1), runner.WithEngineOptions(search.WithMaxDepth(-1)))
		Expect(err).To(HaveOccurred())
		Expect(config.IsConfigurationError(err)).To(BeFalse())
	})
})

var _ = Describe("NewPolicy", func() {
	It("should construct the policy of the configured domain", func() {
		p, err := runner.NewPolicy(config.New(config.Subsets, 2))
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&policy.Subsets{}))

		p, err = runner.NewPolicy(config.New(config.Permutations, 2))
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&policy.Permutations{}))
	})

	It("should not return a policy for an invalid configuration", func() {
		p, err := runner.NewPolicy(config.New(config.Permutations, -1))
		Expect(err).To(HaveOccurred())
		Expect(p).To(BeNil())
	})
})
