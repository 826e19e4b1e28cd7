package strscantest

import (
	"testing"

	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

func TestScanner_Peek(t *testing.T) {
	ItBehavesLikePeek(t, (*strscan.Scanner).Peek)
}

func TestScanner_Peep(t *testing.T) {
	ItBehavesLikePeek(t, (*strscan.Scanner).Peep)
}

func TestAliases(t *testing.T) {
	for _, alias := range strscan.Aliases() {
		t.Run(alias.Name, func(t *testing.T) {
			ItBehavesLikePeek(t, alias.Op)
		})
	}
}
