// SPDX-License-Identifier: MIT

package feature

// DefaultFill is the neutral substitute used for questions without an override.
const DefaultFill = 3.0

// FillPolicy maps a question base to the value substituted for missing or
// non-numeric answers.
type FillPolicy struct {
	Default   float64            `yaml:"default"`
	Overrides map[string]float64 `yaml:"overrides"`
}

// DefaultFillPolicy returns the survey's neutral answers: Q25 is a 0–10
// scale (neutral 5), Q1 and Q24 are yes/no style (neutral 0), everything
// else is a 1–5 Likert scale (neutral 3).
func DefaultFillPolicy() FillPolicy {
	return FillPolicy{
		Default: DefaultFill,
		Overrides: map[string]float64{
			"Q25": 5,
			"Q1":  0,
			"Q24": 0,
		},
	}
}

// Value returns the fill value for base.
func (p FillPolicy) Value(base string) float64 {
	if v, ok := p.Overrides[base]; ok {
		return v
	}

	return p.Default
}
