package models

import "fmt"

// PositionalVariant is a variant described by its genomic
// location and allele change, i.e. "8-140300616-T-G"
type PositionalVariant struct {
	Chromosome string `json:"chromosome"`
	Position   string `json:"position"`
	Reference  string `json:"reference"`
	Alternate  string `json:"alternate"`
}

func (p PositionalVariant) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", p.Chromosome, p.Position, p.Reference, p.Alternate)
}
