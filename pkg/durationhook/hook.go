// Package durationhook plugs the duration string codec into
// mapstructure-based decoders such as viper.
//
//	v.Unmarshal(&cfg, viper.DecodeHook(durationhook.StringToDuration()))
package durationhook

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/mash-protocol/durunit/pkg/duration"
)

var (
	stdDurationType = reflect.TypeOf(time.Duration(0))
	durationType    = reflect.TypeOf(duration.Duration(0))
	unitValueType   = reflect.TypeOf(duration.UnitValue{})
)

// StringToDuration returns a decode hook that parses duration strings into
// time.Duration, duration.Duration and duration.UnitValue targets.
// Pointer targets are reached through their element type. Other
// conversions pass through unchanged.
//
// time.Duration targets use the duration string grammar too, so Go-style
// values such as "1h30m" are rejected.
func StringToDuration() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := reflect.ValueOf(data).String()

		switch to {
		case stdDurationType:
			return duration.Decode(s)
		case durationType:
			d, err := duration.Decode(s)
			return duration.Duration(d), err
		case unitValueType:
			return duration.ParseUnitValue(s)
		default:
			return data, nil
		}
	}
}
