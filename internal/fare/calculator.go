// Package fare holds the pure money arithmetic of a fare tier: component
// totals, passenger totals and seat consumption. All amounts are exact
// decimals with at most two fractional digits.
package fare

import (
	"fmt"

	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money amounts carry.
const MoneyScale int32 = 2

// MaxAmount is the exclusive upper bound of a single money component,
// matching the NUMERIC(12,2) columns fare components are stored in.
var MaxAmount = decimal.New(1, 10)

// ChildFareFactor is applied to the grand total for each child passenger.
var ChildFareFactor = decimal.RequireFromString("0.75")

// Components are the priced parts of a fare tier.
type Components struct {
	BasicFare  decimal.Decimal `json:"basic_fare"`
	YQ         decimal.Decimal `json:"yq"`
	YR         decimal.Decimal `json:"yr"`
	OT         decimal.Decimal `json:"ot"`
	InfantFare decimal.Decimal `json:"infant_fare"`
	Markup1    decimal.Decimal `json:"markup1"`
	Markup2    decimal.Decimal `json:"markup2"`
}

type namedAmount struct {
	name  string
	value decimal.Decimal
}

func (c Components) named() []namedAmount {
	return []namedAmount{
		{"basic_fare", c.BasicFare},
		{"yq", c.YQ},
		{"yr", c.YR},
		{"ot", c.OT},
		{"infant_fare", c.InfantFare},
		{"markup1", c.Markup1},
		{"markup2", c.Markup2},
	}
}

// Validate rejects negative amounts, amounts reaching MaxAmount and amounts
// finer than MoneyScale.
func (c Components) Validate() error {
	fields := map[string]string{}
	for _, f := range c.named() {
		if msg := amountProblem(f.value); msg != "" {
			fields[f.name] = msg
		}
	}
	if len(fields) > 0 {
		return apperrors.Validation("invalid fare components", fields)
	}
	return nil
}

// Totals returns grossTotal and grandTotal for the components.
func (c Components) Totals() (gross, grand decimal.Decimal, err error) {
	if err = c.Validate(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	gross = GrossTotal(c.BasicFare, c.YQ, c.YR, c.OT)
	grand = GrandTotal(gross, c.Markup1, c.Markup2)
	return gross, grand, nil
}

// MarkupsEqual reports whether the markup-related components of c and o are equal in value.
func (c Components) MarkupsEqual(o Components) bool {
	return c.InfantFare.Equal(o.InfantFare) &&
		c.Markup1.Equal(o.Markup1) &&
		c.Markup2.Equal(o.Markup2)
}

// Round normalises every component to MoneyScale.
func (c Components) Round() Components {
	return Components{
		BasicFare:  c.BasicFare.Round(MoneyScale),
		YQ:         c.YQ.Round(MoneyScale),
		YR:         c.YR.Round(MoneyScale),
		OT:         c.OT.Round(MoneyScale),
		InfantFare: c.InfantFare.Round(MoneyScale),
		Markup1:    c.Markup1.Round(MoneyScale),
		Markup2:    c.Markup2.Round(MoneyScale),
	}
}

func GrossTotal(basicFare, yq, yr, ot decimal.Decimal) decimal.Decimal {
	return basicFare.Add(yq).Add(yr).Add(ot)
}

func GrandTotal(gross, markup1, markup2 decimal.Decimal) decimal.Decimal {
	return gross.Add(markup1).Add(markup2)
}

// SeatsRequired is the number of seats a party consumes. Infants travel on
// an adult's lap and take no seat.
func SeatsRequired(adults, children, infants int) int {
	return adults + children
}

// ChildPrice is ChildFareFactor of the unit price, rounded half away from
// zero to MoneyScale.
func ChildPrice(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(ChildFareFactor).Round(MoneyScale)
}

// PassengerTotal prices a party: adults pay the unit price, children pay
// ChildPrice and infants pay the infant fare. Each child is charged the
// rounded ChildPrice so a quoted breakdown always adds up to the total.
func PassengerTotal(unitPrice, infantFare decimal.Decimal, adults, children, infants int) (decimal.Decimal, error) {
	if adults < 1 {
		return decimal.Zero, apperrors.Validation("at least one adult is required",
			map[string]string{"adults": "must be at least 1"})
	}
	if children < 0 || infants < 0 {
		return decimal.Zero, apperrors.Validation("passenger counts must not be negative", nil)
	}
	if msg := sumProblem(unitPrice); msg != "" {
		return decimal.Zero, apperrors.Validation("invalid unit price", map[string]string{"unit_price": msg})
	}
	if msg := amountProblem(infantFare); msg != "" {
		return decimal.Zero, apperrors.Validation("invalid infant fare", map[string]string{"infant_fare": msg})
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(adults))).
		Add(ChildPrice(unitPrice).Mul(decimal.NewFromInt(int64(children)))).
		Add(infantFare.Mul(decimal.NewFromInt(int64(infants))))
	return total.Round(MoneyScale), nil
}

// ParseAmount parses a money string. An empty string is zero.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Validation(fmt.Sprintf("%s is not a number", field),
			map[string]string{field: "must be a number"})
	}
	if msg := amountProblem(d); msg != "" {
		return decimal.Zero, apperrors.Validation(fmt.Sprintf("%s %s", field, msg),
			map[string]string{field: msg})
	}
	return d, nil
}

func amountProblem(d decimal.Decimal) string {
	if msg := sumProblem(d); msg != "" {
		return msg
	}
	if d.GreaterThanOrEqual(MaxAmount) {
		return fmt.Sprintf("must be less than %s", MaxAmount.String())
	}
	return ""
}

// sumProblem 總額可以超過單一組成上限
func sumProblem(d decimal.Decimal) string {
	if d.IsNegative() {
		return "must not be negative"
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return fmt.Sprintf("must have at most %d decimal places", MoneyScale)
	}
	return ""
}
