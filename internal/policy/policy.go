// Package policy implements the runtime policy gate and evidence ledger
// spec.md treats as an external collaborator (§4.5): an adjudicator
// consulted on each alignment to admit, warn about, or reject suspicious
// operations, plus an append-only record of its decisions.
package policy

import "fmt"

// RuntimeMode selects how strictly the gate treats unknown features such
// as duplicate index labels.
type RuntimeMode int

const (
	// ModeStrict rejects duplicate-label operations outright.
	ModeStrict RuntimeMode = iota
	// ModeHardened admits duplicate-label operations (recording evidence)
	// and enforces a configurable row cap on union admission.
	ModeHardened
)

// DecisionAction is the outcome of a policy decision.
type DecisionAction int

const (
	Admit DecisionAction = iota
	Warn
	Reject
)

func (a DecisionAction) String() string {
	switch a {
	case Admit:
		return "admit"
	case Warn:
		return "warn"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// defaultStrictRowCap bounds union admission under strict mode. Strict
// mode is meant for small, trusted operations; this cap is generous enough
// not to interfere with ordinary use while still catching runaway unions.
const defaultStrictRowCap = 1_000_000

// Entry is one append-only record in the EvidenceLedger.
type Entry struct {
	Area   string
	Reason string
	Action DecisionAction
	Detail string
}

// EvidenceLedger is an append-only record of policy decisions. The core
// never reads from it; it exists for callers to audit after the fact.
type EvidenceLedger struct {
	entries []Entry
}

// NewEvidenceLedger builds an empty ledger.
func NewEvidenceLedger() *EvidenceLedger {
	return &EvidenceLedger{}
}

// Entries returns the recorded entries in append order.
func (l *EvidenceLedger) Entries() []Entry { return l.entries }

func (l *EvidenceLedger) record(e Entry) { l.entries = append(l.entries, e) }

// RuntimePolicy is the policy gate consulted on each alignment.
type RuntimePolicy struct {
	mode   RuntimeMode
	rowCap *int
}

// Strict builds a strict-mode policy: duplicate labels are rejected, and
// union admission is bounded by a conservative default row cap.
func Strict() RuntimePolicy {
	cap := defaultStrictRowCap
	return RuntimePolicy{mode: ModeStrict, rowCap: &cap}
}

// NoRowCap marks a Hardened policy with no union-size ceiling.
const NoRowCap = -1

// Hardened builds a hardened-mode policy: duplicate labels are admitted
// (with evidence recorded), and union admission is bounded by limit rows.
// Pass NoRowCap to admit unions of any size.
func Hardened(limit int) RuntimePolicy {
	if limit == NoRowCap {
		return RuntimePolicy{mode: ModeHardened, rowCap: nil}
	}
	rowCap := limit
	return RuntimePolicy{mode: ModeHardened, rowCap: &rowCap}
}

// Mode reports the policy's runtime mode.
func (p RuntimePolicy) Mode() RuntimeMode { return p.mode }

// DecideUnknownFeature is advisory only: it always records evidence. Strict
// rejection of the feature (e.g. duplicate indices) is the caller's
// responsibility once it observes ModeStrict, per spec.md §4.5.
func (p RuntimePolicy) DecideUnknownFeature(area, reason string, ledger *EvidenceLedger) {
	ledger.record(Entry{
		Area:   area,
		Reason: reason,
		Action: Warn,
		Detail: fmt.Sprintf("unknown feature %q observed: %s", area, reason),
	})
}

// DecideJoinAdmission is called after alignment with the union's row count
// and returns Admit, Warn, or Reject. Rejection aborts the operation.
func (p RuntimePolicy) DecideJoinAdmission(unionSize int, ledger *EvidenceLedger) DecisionAction {
	action := Admit
	detail := fmt.Sprintf("union size %d admitted", unionSize)

	if p.rowCap != nil {
		rowCap := *p.rowCap
		warnThreshold := (rowCap * 8) / 10
		switch {
		case unionSize > rowCap:
			action = Reject
			detail = fmt.Sprintf("union size %d exceeds row cap %d", unionSize, rowCap)
		case unionSize > warnThreshold:
			action = Warn
			detail = fmt.Sprintf("union size %d approaching row cap %d", unionSize, rowCap)
		}
	}

	ledger.record(Entry{
		Area:   "join_admission",
		Action: action,
		Detail: detail,
	})
	return action
}
