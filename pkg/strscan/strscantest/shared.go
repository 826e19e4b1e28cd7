// Package strscantest holds shared examples for strscan operations.
package strscantest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

// ItBehavesLikePeek runs the peek contract against op. Each example becomes a
// subtest on a fresh scanner over strscan.ContractText.
func ItBehavesLikePeek(t *testing.T, op strscan.PeekOp) {
	t.Helper()

	for _, ex := range strscan.PeekContract() {
		t.Run(ex.Desc, func(t *testing.T) {
			s := strscan.New(strscan.ContractText)

			for _, st := range ex.Steps {
				if st.Kind == strscan.StepSeek {
					require.NoError(t, s.SetPos(st.Pos), st.String())
					continue
				}

				before := s.Pos()
				got, err := strscan.Call(op, s, st.Arg)
				require.Equal(t, before, s.Pos(), "%s moved the position", st)

				if st.WantErr != nil {
					require.ErrorIs(t, err, st.WantErr, st.String())
					continue
				}

				require.NoError(t, err, st.String())
				require.Equal(t, st.Want, got, st.String())
			}
		})
	}
}
