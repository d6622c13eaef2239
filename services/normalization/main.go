package normalization

import (
	"fmt"
	"strings"
	"unicode"

	"svid/api/models"
)

/*
	Pure conversions between the variant notations the
	downstream services expect. No lookups, no side effects :
	anything requiring a network round trip (hgvs to genomic
	coordinates) lives in the ensembl service instead.
*/

// ParsePositionalVariant splits a "chr-pos-ref-alt" string into its
// four components. Returns a format error unless the split yields
// exactly four fields ; the caller must surface it rather than guess.
func ParsePositionalVariant(text string) (models.PositionalVariant, error) {
	components := strings.Split(text, "-")
	if len(components) != 4 {
		return models.PositionalVariant{}, fmt.Errorf("invalid variant format '%s' : expected 'chr-pos-ref-alt'", text)
	}

	return models.PositionalVariant{
		Chromosome: components[0],
		Position:   components[1],
		Reference:  components[2],
		Alternate:  components[3],
	}, nil
}

// ExtractVariantChange derives the bare allele change from an hgvs
// string : take the suffix after the last ':', drop digits, '.' and
// the transcript-notation 'c', and swap '>' for '-'
// ("NM_000516.7:c.601C>T" yields "C-T").
func ExtractVariantChange(hgvs string) string {
	segments := strings.Split(hgvs, ":")
	change := segments[len(segments)-1]

	var kept strings.Builder
	for _, r := range change {
		if unicode.IsDigit(r) || r == '.' || r == 'c' {
			continue
		}
		kept.WriteRune(r)
	}

	return strings.ReplaceAll(kept.String(), ">", "-")
}

// PositionalKey assembles the canonical "{chromosome}-{start}-{ref}-{alt}"
// key used by services keyed on genomic position, from a chromosome,
// a start coordinate and an already-extracted "{ref}-{alt}" change.
func PositionalKey(chromosome string, start int, variantChange string) string {
	return fmt.Sprintf("%s-%d-%s", chromosome, start, variantChange)
}
