package valuex_test

import (
	"fmt"

	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

func ExampleDeepClone() {
	src := valuex.NewObject().Set("nested", valuex.NewObject().Set("b", int64(2)))

	clone := valuex.DeepClone(src)
	_ = valuex.Set(clone, "nested.b", int64(99))

	before, _ := valuex.Get(src, "nested.b")
	after, _ := valuex.Get(clone, "nested.b")
	fmt.Println(before, after)
	// Output:
	// 2 99
}

func ExampleClone() {
	o := valuex.NewObject()
	o.Set("self", o)

	_, err := valuex.Clone(o)
	fmt.Println(err)
	// Output:
	// unsupported structure at $.self: cycle detected
}

func ExampleDecode() {
	v, err := valuex.Decode([]byte("name: mdw\nports: [80, 443]\n"), valuex.FormatYAML)
	if err != nil {
		panic(err)
	}
	out, err := valuex.Encode(v, valuex.FormatJSON)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))
	// Output:
	// {
	//   "name": "mdw",
	//   "ports": [
	//     80,
	//     443
	//   ]
	// }
}

func ExampleObject_Keys() {
	o := valuex.NewObject().Set("zeta", 1).Set("alpha", 2)
	fmt.Println(o.Keys())
	// Output:
	// [zeta alpha]
}
