package concerns

import (
	"github.com/shopspring/decimal"
)

type PrecisionValidator struct {
}

// LessThanOrEqTo reports whether value has at most precision decimal
// places. Used to reject user-entered amounts with sub-cent noise;
// engine-computed amounts (conversion results) are not subject to it.
func (p PrecisionValidator) LessThanOrEqTo(value decimal.Decimal, precision int32) bool {
	return value.Equal(value.Round(precision))
}
