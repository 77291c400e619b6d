package model

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
)

func nd(v int64) decimal.NullDecimal {
    return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func TestFareRowForClass(t *testing.T) {
    row := FareRow{AC: nd(500), Sleeper: nd(300), Passenger: nd(100)}

    cases := map[string]int64{
        "ac":       500,
        "AC":       500,
        "Ac":       500,
        "sleeper":  300,
        "SLEEPER":  300,
        "general":  100,
        "business": 100,
        "":         100,
    }
    for class, want := range cases {
        got, ok := row.ForClass(class)
        assert.True(t, ok, class)
        assert.True(t, decimal.NewFromInt(want).Equal(got), "class %q: got %s", class, got)
    }
}

func TestFareRowForClassNullColumn(t *testing.T) {
    row := FareRow{AC: nd(500), Passenger: nd(100)}
    _, ok := row.ForClass("sleeper")
    assert.False(t, ok)
}
