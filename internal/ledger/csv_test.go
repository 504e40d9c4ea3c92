package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func TestPostingsRoundTrip(t *testing.T) {
	e := newEngine(t)
	post(t, e, date(2024, 1, 1), "Owner investment", "Cash", "Owner's Capital", "1000")
	post(t, e, date(2024, 1, 15), "Rent, January", "Rent Expense", "Cash", "450.5")

	var buf bytes.Buffer
	require.NoError(t, WritePostings(&buf, e.Log()))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))
	assert.Contains(t, buf.String(), `"Rent, January"`)
	assert.Contains(t, buf.String(), ",450.5\n")

	got, err := ReadPostings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, date(2024, 1, 15), got[1].Date)
	assert.Equal(t, "Rent, January", got[1].Description)
	assert.Equal(t, "Rent Expense", got[1].DebitAccount)
	assert.Equal(t, "Cash", got[1].CreditAccount)
	assert.True(t, got[1].Amount.Equal(dec("450.50")))
}

func TestPostingsRoundTrip_KeepsFullPrecision(t *testing.T) {
	e := newEngine(t)
	post(t, e, date(2024, 3, 1), "Card fee", "Advertising Expense", "Cash", "0.004")
	post(t, e, date(2024, 3, 2), "Fuel", "Supplies Expense", "Cash", "1.005")

	var buf bytes.Buffer
	require.NoError(t, WritePostings(&buf, e.Log()))

	got, err := ReadPostings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("0.004")), "got %s", got[0].Amount)
	assert.True(t, got[1].Amount.Equal(dec("1.005")), "got %s", got[1].Amount)

	replayed := newEngine(t)
	for _, p := range got {
		_, err := replayed.Post(p)
		require.NoError(t, err)
	}
	assert.True(t, balance(t, replayed, "Cash").Equal(dec("-1.009")))
}

func TestReadPostings_TrimsFields(t *testing.T) {
	in := Header + "\n 2024-02-03 , Supplies run , Supplies , Cash , 12.00 \n"
	got, err := ReadPostings(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Supplies run", got[0].Description)
	assert.Equal(t, "Supplies", got[0].DebitAccount)
	assert.Equal(t, "Cash", got[0].CreditAccount)
}

func TestReadPostings_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad date", Header + "\n2024/02/03,x,Cash,Owner's Capital,1\n", model.ErrInvalidDate},
		{"impossible date", Header + "\n2024-02-30,x,Cash,Owner's Capital,1\n", model.ErrInvalidDate},
		{"bad amount", Header + "\n2024-02-03,x,Cash,Owner's Capital,one\n", model.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPostings(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}

func TestReadPostings_Empty(t *testing.T) {
	got, err := ReadPostings(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
