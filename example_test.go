/*
Copyright 2020 Craig McQueen

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package simplerandom

import "fmt"

func ExampleNewKISS() {
	rng := NewKISS(1, 2, 3, 4)
	for i := 0; i < 3; i++ {
		fmt.Println(rng.Next())
	}
	// Output:
	// 2424001924
	// 107884083
	// 623570573
}

func ExampleKISS_Jump() {
	stepped := NewKISS(1, 2, 3, 4)
	for i := 0; i < 10000; i++ {
		stepped.Next()
	}

	jumped := NewKISS(1, 2, 3, 4)
	jumped.Jump(10000)

	fmt.Println(stepped.Next() == jumped.Next())
	// Output:
	// true
}

func ExampleKISS_SetState() {
	rng := NewKISS(1, 2, 3, 4)
	rng.Next()
	saved := rng.State()

	restored := new(KISS)
	if err := restored.SetState(saved); err != nil {
		panic(err)
	}
	fmt.Println(rng.Next() == restored.Next())
	// Output:
	// true
}
