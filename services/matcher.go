package services

import (
	"strings"

	"comment_monitor/models"
)

// Evaluate applies a rule set to one text. It has no side effects.
//
// Every AND term must occur, at least one OR term must occur when any OR
// rule exists, and no NOT term may occur. Containment is a case-insensitive
// substring test. An empty rule set never matches. MatchedTerms lists the
// AND/OR terms found, in rule order and without case-insensitive repeats;
// NOT terms found are reported in ExcludedBy.
func Evaluate(rules []models.KeywordRule, text string) models.MatchResult {
	result := models.MatchResult{MatchedTerms: []string{}}

	var ands, ors, nots []models.KeywordRule
	for _, r := range rules {
		if strings.TrimSpace(r.Term) == "" {
			continue
		}
		switch r.Operator {
		case models.OperatorAnd:
			ands = append(ands, r)
		case models.OperatorOr:
			ors = append(ors, r)
		case models.OperatorNot:
			nots = append(nots, r)
		}
	}
	if len(ands)+len(ors)+len(nots) == 0 {
		return result
	}

	lower := strings.ToLower(text)
	found := func(r models.KeywordRule) bool {
		return strings.Contains(lower, strings.ToLower(strings.TrimSpace(r.Term)))
	}

	seen := make(map[string]bool)
	record := func(r models.KeywordRule) {
		term := strings.TrimSpace(r.Term)
		result.MatchedRuleIDs = append(result.MatchedRuleIDs, r.ID)
		if key := strings.ToLower(term); !seen[key] {
			seen[key] = true
			result.MatchedTerms = append(result.MatchedTerms, term)
		}
	}

	andOK := true
	for _, r := range ands {
		if found(r) {
			record(r)
		} else {
			andOK = false
		}
	}

	orOK := len(ors) == 0
	for _, r := range ors {
		if found(r) {
			record(r)
			orOK = true
		}
	}

	for _, r := range nots {
		if found(r) {
			result.ExcludedBy = append(result.ExcludedBy, strings.TrimSpace(r.Term))
		}
	}

	result.IsMatch = andOK && orOK && len(result.ExcludedBy) == 0
	return result
}
