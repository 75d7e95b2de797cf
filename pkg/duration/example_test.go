package duration_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/mash-protocol/durunit/pkg/duration"
	"github.com/mash-protocol/durunit/pkg/timeunit"
)

func ExampleFormat() {
	fmt.Println(duration.Format(123 * time.Second))
	fmt.Println(duration.Format(1500 * time.Microsecond))
	fmt.Println(duration.Format(48 * time.Hour))
	fmt.Println(duration.Format(0))
	// Output:
	// 123s
	// 1500us
	// 2d
	// 0s
}

func ExampleParse() {
	d, err := duration.Parse("60s")
	fmt.Println(d, err)

	_, err = duration.Parse("123x")
	fmt.Println(errors.Is(err, duration.ErrUnknownUnit))
	// Output:
	// 1m0s <nil>
	// true
}

func ExampleUnitValue_Convert() {
	v := duration.FromHours(2)
	m, _ := v.Convert(timeunit.Minute)
	fmt.Println(v, m)
	// Output: 2h 120m
}
