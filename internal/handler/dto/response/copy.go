package response

import (
	"time"

	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Read models keep minor units and time.Time; the wire carries decimal strings,
// YYYY-MM-DD dates and unix timestamps. Destination fields are matched by name
// or by a copier tag naming the source field.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: int64(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return money.FromCents(src.(int64)).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*string)(nil), nil
				}
				s := t.Format(time.DateOnly)
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return errs.Wrap(err, "failed to map response")
	}
	return nil
}
