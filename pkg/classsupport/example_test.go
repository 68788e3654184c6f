package classsupport_test

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/classfmt/go-sdk/pkg/classsupport"
	"github.com/classfmt/go-sdk/pkg/core"
)

func ExampleNullSafeToString() {
	fmt.Println(classsupport.NullSafeToString(reflect.TypeOf(""), reflect.TypeOf(time.Second)))
	fmt.Println(classsupport.NullSafeToString(reflect.TypeOf(url.URL{}), nil))
	fmt.Printf("%q\n", classsupport.NullSafeToString())
	// Output:
	// string, time.Duration
	// net/url.URL, null
	// ""
}

func ExampleNullSafeToStringWith() {
	s, err := classsupport.NullSafeToStringWith(classsupport.SimpleName,
		reflect.TypeOf(url.URL{}), reflect.TypeOf(&time.Location{}))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	_, err = classsupport.NullSafeToStringWith(nil, reflect.TypeOf(0))
	fmt.Println(errors.Is(err, core.ErrInvalidArgument))
	// Output:
	// URL, *Location
	// true
}

func ExampleNewFormatter() {
	f := classsupport.NewFormatter(classsupport.WithSeparator(" + "), classsupport.WithNullLiteral("?"))
	fmt.Println(f.Format(reflect.TypeOf(0), nil, reflect.TypeOf(time.Second)))
	// Output:
	// int + ? + time.Duration
}
