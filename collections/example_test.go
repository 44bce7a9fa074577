package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-data/arr"
	"github.com/hasbyte1/go-laravel-data/collections"
)

func ExampleNewRecord() {
	rec := collections.NewRecord(map[string]any{
		"user": map[string]any{"name": "Alice"},
	})
	rec.SetPath("user.address.city", "London").Put("active", true)
	fmt.Println(rec)
	// Output: {"user":{"name":"Alice","address":{"city":"London"}},"active":true}
}

func ExampleRecord_GetPath() {
	rec, _ := collections.RecordFromJSON([]byte(`{"items":[{"id":10},{"id":20}]}`))
	fmt.Println(rec.GetPath("items.*.id"))
	fmt.Println(rec.GetPath("items.*.sku", "none"))
	// Output:
	// [10 20]
	// none
}

func ExampleRecord_MergeWith() {
	rec := collections.NewRecord(arr.MapOf("tags", []any{"a", "b"}))
	rec.MergeWith(arr.MapOf("tags", []any{"b", "c"}), arr.MergeOptions{Lists: arr.ListUnique})
	fmt.Println(rec)
	// Output: {"tags":["a","b","c"]}
}

func ExampleRecord_Extract() {
	type author struct{ FirstName string }
	rec := collections.NewRecord(nil).Put("author", author{FirstName: "Ada"})
	fmt.Println(rec.Extract("author.first_name"))
	// Output: Ada
}

func ExampleUndotRecord() {
	rec := collections.UndotRecord(map[string]any{"db.host": "localhost", "db.port": 5432})
	fmt.Println(rec)
	// Output: {"db":{"host":"localhost","port":5432}}
}

func ExampleCollection_Where() {
	people := collections.Collect([]any{
		arr.MapOf("name", "Alice", "age", 34),
		arr.MapOf("name", "Bob", "age", 17),
		arr.MapOf("name", "Carol", "age", 25),
	})
	fmt.Println(people.Where("age", ">=", 18).SortByPath("age").PluckPath("name"))
	// Output: ["Carol","Alice"]
}

func ExampleCollection_GroupByPath() {
	groups := collections.Collect([]any{
		arr.MapOf("name", "Alice", "role", "admin"),
		arr.MapOf("name", "Bob", "role", "user"),
		arr.MapOf("name", "Carol", "role", "user"),
	}).GroupByPath("role")
	for role, group := range groups.All() {
		fmt.Println(role, group.(*collections.Collection[any]).PluckPath("name"))
	}
	// Output:
	// admin ["Alice"]
	// user ["Bob","Carol"]
}

func ExampleCollection_Chunk() {
	for _, chunk := range collections.New(1, 2, 3, 4, 5).Chunk(2) {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleMap() {
	lengths := collections.Map(collections.New("go", "laravel"), func(s string, _ int) int { return len(s) })
	fmt.Println(lengths.All())
	// Output: [2 7]
}
