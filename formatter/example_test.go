package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
)

func ExamplePrettyFormatter_Format() {
	rec, err := core.DecodeString(`{"level":40,"name":"api","pid":42,"time":1328741812856,"msg":"slow request","ms":1250}`)
	if err != nil {
		panic(err)
	}

	f := formatter.NewPrettyFormatter(formatter.Config{Location: time.UTC})
	fmt.Print(f.Format(rec))
	// Output:
	// [2012-02-08T22:56:52.856Z]  WARN: api/42: slow request (ms=1250)
}

func ExampleFormatExtras() {
	fields := []core.Field{
		core.String("user", "alice"),
		core.RawJSON("req", core.ObjectType, `{"method":"GET","url":"/"}`),
	}
	fmt.Print(formatter.FormatExtras(fields, false))
	// Output:
	//  (user=alice)
	//     req: {
	//       "method": "GET",
	//       "url": "/"
	//     }
}
