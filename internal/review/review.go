// Package review buckets classified documents into exhibit tabs and runs the
// pre-assembly completeness check.
package review

import (
	"context"

	"go.uber.org/zap"

	"caseprep/internal/ai"
	"caseprep/internal/fault"
	"caseprep/internal/schema"
)

// Verdict is the outcome of a completeness check over the bucketed evidence.
type Verdict struct {
	HasMinimum bool
	Missing    []string
}

// BucketDocuments groups classified documents by tab label, preserving the
// classification order within each tab. A label the case type does not
// declare lands in the default tab instead of being dropped.
func BucketDocuments(ct *schema.CaseType, docs []ai.ClassifiedDocument) map[string][]string {
	known := make(map[string]bool, len(ct.Tabs))
	for _, tab := range ct.Tabs {
		known[tab.Label] = true
	}

	buckets := make(map[string][]string)
	for _, doc := range docs {
		label := doc.TabLabel
		if !known[label] {
			label = ct.DefaultTab
		}
		buckets[label] = append(buckets[label], doc.Description)
	}
	return buckets
}

// Checker asks the verifier whether the bucketed evidence meets the filing
// minimum for the case type.
type Checker struct {
	verifier ai.Verifier
	log      *zap.Logger
}

func NewChecker(verifier ai.Verifier, log *zap.Logger) *Checker {
	return &Checker{verifier: verifier, log: log}
}

// Check never fails the pipeline: a verifier error becomes a secondary
// check failure and degrades to a negative verdict with a single
// explanatory entry, and the attorney decides.
func (c *Checker) Check(ctx context.Context, buckets map[string][]string, cc ai.CaseContext) Verdict {
	hasMinimum, missing, err := c.verifier.VerifyCompleteness(ctx, buckets, cc)
	if err != nil {
		ferr := fault.NewSecondaryCheckFailure(err)
		c.log.Warn("completeness check degraded",
			zap.String("case_type", cc.CaseTypeID),
			zap.String("code", string(ferr.Code)),
			zap.Error(ferr))
		return Verdict{HasMinimum: false, Missing: []string{"Unable to verify documents"}}
	}
	return Verdict{HasMinimum: hasMinimum, Missing: missing}
}
