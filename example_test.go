package rappor_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/clebeer/rappor"
	"github.com/clebeer/rappor/testutil"
)

func Example() {
	// A constant source makes the report reproducible; production encoders
	// omit WithSource and draw from system entropy.
	enc, err := rappor.NewEncoder(rappor.DefaultParams(), "u1",
		rappor.WithSource(testutil.Const{V: 0.6}))
	if err != nil {
		log.Fatal(err)
	}

	report := enc.Encode("v1")
	fmt.Printf("cohort=%d report=%s\n", report.Cohort, report.Bits)
	// Output: cohort=38 report=0001000000010000
}

func ExampleParamsFromCSV() {
	params, err := rappor.ParamsFromCSV(strings.NewReader("k,h,m,p,q,f\n32,2,8,0.4,0.8,0.25\n"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(params.NumBloomBits, params.NumCohorts, params.ProbF)
	// Output: 32 8 0.25
}
