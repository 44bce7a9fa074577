package collections_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-data/arr"
	"github.com/hasbyte1/go-laravel-data/collections"
)

func sampleRecord(opts ...collections.RecordOption) *collections.Record {
	return collections.NewRecord(map[string]any{
		"user": map[string]any{
			"name":  "Alice",
			"email": "alice@example.com",
		},
		"items": []any{
			map[string]any{"id": 10, "sku": "A"},
			map[string]any{"id": 20, "sku": "B"},
		},
	}, opts...)
}

// debugLogger returns a Record logger writing text lines into buf.
func debugLogger(buf *bytes.Buffer) collections.Logger {
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return collections.NewSlogAdapter(slog.New(h))
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

func TestNewRecordNormalizes(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, []string{"items", "user"}, rec.Keys(), "plain maps are sorted")
	assert.Equal(t, `{"items":[{"id":10,"sku":"A"},{"id":20,"sku":"B"}],"user":{"email":"alice@example.com","name":"Alice"}}`, rec.String())
}

func TestNewRecordNil(t *testing.T) {
	rec := collections.NewRecord(nil)
	assert.True(t, rec.IsEmpty())
	assert.Equal(t, `{}`, rec.String())
}

func TestNewRecordCopiesInput(t *testing.T) {
	src := arr.MapOf("a", arr.MapOf("b", 1))
	rec := collections.NewRecord(src)
	src.Set("c", 2)
	inner, _ := src.Get("a")
	inner.(*arr.Map).Set("b", "changed")
	assert.Equal(t, `{"a":{"b":1}}`, rec.String())

	clone := collections.NewRecord(rec)
	clone.Put("z", true)
	assert.False(t, rec.Has("z"))
}

func TestRecordFromJSON(t *testing.T) {
	rec, err := collections.RecordFromJSON([]byte(`{"z":1,"a":{"b":[1,2]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, rec.Keys())
	assert.Equal(t, 2, rec.GetPath("a.b.1"))

	_, err = collections.RecordFromJSON([]byte(`{`))
	assert.ErrorIs(t, err, arr.ErrInvalidJSON)
}

func TestRecordFromYAML(t *testing.T) {
	rec, err := collections.RecordFromYAML([]byte("z: 1\na:\n  b: [1, 2]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, rec.Keys())
	assert.Equal(t, []any{1, 2}, rec.GetPath("a.b"))

	empty, err := collections.RecordFromYAML(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = collections.RecordFromYAML([]byte("a: [1"))
	assert.ErrorIs(t, err, arr.ErrInvalidYAML)
}

func TestUndotRecord(t *testing.T) {
	rec := collections.UndotRecord(arr.MapOf("db.host", "localhost", "db.port", 5432, "debug", true))
	assert.Equal(t, `{"db":{"host":"localhost","port":5432},"debug":true}`, rec.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Top-level keys
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordTopLevelKeys(t *testing.T) {
	rec := collections.NewRecord(nil)
	rec.Put("a", 1).Add("a", 2).Add("b", 3).Put("c.d", 4)

	assert.Equal(t, 1, rec.Get("a"), "Add never overwrites")
	assert.Equal(t, 3, rec.Get("b"))
	assert.Equal(t, 4, rec.Get("c.d"), "top-level keys are literal")
	assert.False(t, rec.HasPath("c.d"))
	assert.Equal(t, "def", rec.Get("missing", "def"))

	assert.True(t, rec.Has("a", "b"))
	assert.False(t, rec.Has("a", "missing"))
	assert.False(t, rec.Has())

	rec.Remove("b", "missing")
	assert.Equal(t, []string{"a", "c.d"}, rec.Keys())
	assert.Equal(t, 2, rec.Count())
}

func TestRecordGetOrFail(t *testing.T) {
	rec := collections.NewRecord(map[string]any{"a": nil})

	v, err := rec.GetOrFail("a")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = rec.GetOrFail("b")
	assert.ErrorIs(t, err, collections.ErrMissingKey)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestRecordListItems(t *testing.T) {
	rec := collections.NewRecord([]any{"x", "y"})
	assert.Equal(t, "y", rec.Get("1"))
	rec.Put("2", "z")
	assert.Equal(t, `["x","y","z"]`, rec.String())
	rec.Remove("0")
	assert.Equal(t, `{"1":"y","2":"z"}`, rec.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Paths
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordPaths(t *testing.T) {
	rec := sampleRecord()

	assert.Equal(t, "Alice", rec.GetPath("user.name"))
	assert.Equal(t, []any{10, 20}, rec.GetPath("items.*.id"))
	assert.Equal(t, "none", rec.GetPath("items.*.missing", "none"))

	assert.True(t, rec.HasPath("user.name", "items.*.sku"))
	assert.False(t, rec.HasPath("items.*.missing"))
	assert.True(t, rec.HasAnyPath("items.*.missing", "user.email"))

	assert.Equal(t, []arr.PathMatch{
		{Path: "items.0.sku", Value: "A", Present: true},
		{Path: "items.1.sku", Value: "B", Present: true},
	}, rec.Paths("items.*.sku"))
	assert.Equal(t, []arr.PathMatch{{Path: "a.*.b"}}, collections.NewRecord(nil).Paths("a.*.b"))
}

func TestRecordSetPathAndForget(t *testing.T) {
	rec := sampleRecord()
	before := rec.GetPath("user")

	rec.SetPath("user.address.city", "London").
		SetPath("items.1.sku", "C").
		Forget("user.email", "items.0")

	assert.Equal(t, "London", rec.GetPath("user.address.city"))
	assert.Equal(t, "C", rec.GetPath("items.1.sku"))
	assert.False(t, rec.HasPath("user.email"))
	assert.False(t, rec.HasPath("items.0"))

	assert.Equal(t, `{"email":"alice@example.com","name":"Alice"}`, before.(*arr.Map).String(),
		"values handed out earlier are not mutated")
}

func TestRecordSetPathEmptyIsNoop(t *testing.T) {
	rec := sampleRecord()
	want := rec.String()
	rec.SetPath("", "x").Forget("")
	assert.Equal(t, want, rec.String())
}

func TestRecordSetPathLogsReplacedScalar(t *testing.T) {
	var buf bytes.Buffer
	rec := collections.NewRecord(map[string]any{"a": 1}, collections.WithLogger(debugLogger(&buf)))

	rec.SetPath("a.b", 2)
	assert.Equal(t, `{"a":{"b":2}}`, rec.String())
	assert.Contains(t, buf.String(), "set path replaced non-container value")
	assert.Contains(t, buf.String(), "at=a")

	buf.Reset()
	rec.SetPath("a.c", 3)
	assert.Empty(t, buf.String(), "containers are not reported")
}

func TestRecordForgetLogsMissingPath(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecord(collections.WithLogger(debugLogger(&buf)))

	rec.Forget("user.phone")
	assert.Contains(t, buf.String(), "forget skipped missing path")
	assert.Contains(t, buf.String(), "path=user.phone")
}

func TestRecordForgetIdempotent(t *testing.T) {
	once := sampleRecord().Forget("user.name")
	twice := sampleRecord().Forget("user.name").Forget("user.name")
	assert.Equal(t, once.String(), twice.String())
}

func TestRecordDotRoundTrip(t *testing.T) {
	rec := sampleRecord()
	flat := rec.Dot()
	assert.Equal(t, []string{"items", "user.email", "user.name"}, flat.Keys())
	assert.Equal(t, rec.String(), collections.UndotRecord(flat).String())

	assert.Equal(t, []string{"cfg.items", "cfg.user.email", "cfg.user.name"}, rec.Dot("cfg").Keys())
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

type owner struct {
	FirstName string
	last      string
}

func (o owner) GetFullName() string { return o.FirstName + " " + o.last }

func TestRecordExtract(t *testing.T) {
	rec := collections.NewRecord(nil).
		Put("owner", owner{FirstName: "Ada", last: "Lovelace"}).
		Put("meta", arr.Getters{"GetCreatedBy": func() any { return "system" }})

	assert.Equal(t, "Ada", rec.Extract("owner.first_name"))
	assert.Equal(t, "Ada Lovelace", rec.Extract("owner.full_name"))
	assert.Equal(t, "system", rec.Extract("meta.created_by"))
	assert.Equal(t, "n/a", rec.Extract("owner.age", "n/a"))
}

func TestNestedRecordIsFieldAccessible(t *testing.T) {
	inner := collections.NewRecord(map[string]any{"city": "Oslo"})
	outer := collections.NewRecord(nil).Put("address", inner)
	assert.Equal(t, "Oslo", outer.Extract("address.city"))
	assert.Equal(t, "Oslo", arr.DataGet(outer, "address.city"))
}

func TestRecordPluck(t *testing.T) {
	rec := collections.NewRecord([]any{
		map[string]any{"id": 1, "name": "a"},
		map[string]any{"id": 2, "name": "b"},
	})
	assert.Equal(t, []any{"a", "b"}, rec.Pluck("name", ""))
	assert.Equal(t, `{"1":"a","2":"b"}`, rec.Pluck("name", "id").(*arr.Map).String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge & derived views
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordMerge(t *testing.T) {
	rec := collections.NewRecord(arr.MapOf("db", arr.MapOf("host", "localhost", "port", 5432), "tags", []any{"a"}))
	rec.Merge(arr.MapOf("db", arr.MapOf("port", 6432), "tags", []any{"b"}))
	assert.Equal(t, `{"db":{"host":"localhost","port":6432},"tags":["b"]}`, rec.String())

	other := collections.NewRecord(arr.MapOf("tags", []any{"b", "c"}))
	rec.MergeWith(other, arr.MergeOptions{Lists: arr.ListUnique})
	assert.Equal(t, `["b","c"]`, mustJSON(t, rec.GetPath("tags")))

	rec.MergeWith(arr.MapOf("tags", []any{"c"}), arr.MergeOptions{Lists: arr.ListAppend})
	assert.Equal(t, `["b","c","c"]`, mustJSON(t, rec.GetPath("tags")))
}

func TestRecordDerivedViews(t *testing.T) {
	rec := collections.NewRecord(arr.MapOf("b", 2, "a", 1, "c", arr.MapOf("z", 1, "y", []any{3, 1})))

	assert.Equal(t, `{"b":2,"a":1}`, rec.Only("a", "b").String())
	assert.Equal(t, `{"b":2,"a":1}`, rec.Except("c").String())
	assert.Equal(t, `{"a":1,"b":2,"c":{"y":[1,3],"z":1}}`, rec.SortRecursive().String())
	assert.Equal(t, `{"a":1,"b":2,"c":{"y":[3,1],"z":1}}`, rec.SortRecursive(arr.SortOptions{}).String())
	assert.Equal(t, []string{"b", "a", "c"}, rec.Keys(), "views leave the record alone")
}

func TestRecordValues(t *testing.T) {
	rec := collections.NewRecord(arr.MapOf("x", 1, "y", 2))
	assert.Equal(t, []any{1, 2}, rec.Values().All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Exposure
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordAllIsDeepCopy(t *testing.T) {
	rec := sampleRecord()
	all := rec.All().(*arr.Map)
	user, _ := all.Get("user")
	user.(*arr.Map).Set("name", "Mallory")
	assert.Equal(t, "Alice", rec.GetPath("user.name"))
}

func TestRecordToArray(t *testing.T) {
	rec := collections.NewRecord(arr.MapOf("a", arr.MapOf("b", []any{1})))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": []any{1}}}, rec.ToArray())
}

func TestRecordJSONInterfaces(t *testing.T) {
	var doc struct {
		Settings *collections.Record `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"settings":{"z":true,"a":{"k":1}}}`), &doc))
	assert.Equal(t, []string{"z", "a"}, doc.Settings.Keys())
	assert.Equal(t, 1, doc.Settings.GetPath("a.k"))

	doc.Settings.SetPath("a.k", 2)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"settings":{"z":true,"a":{"k":2}}}`, string(out))
}

func TestRecordToYAML(t *testing.T) {
	rec := sampleRecord()
	out, err := rec.ToYAML()
	require.NoError(t, err)

	back, err := collections.RecordFromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, rec.String(), back.String())
}

func TestRecordFingerprint(t *testing.T) {
	a := collections.NewRecord(arr.MapOf("x", 1, "y", arr.MapOf("p", true, "q", []any{1, 2})))
	b := collections.NewRecord(arr.MapOf("y", arr.MapOf("q", []any{1, 2}, "p", true), "x", 1))
	c := collections.NewRecord(arr.MapOf("x", 1, "y", arr.MapOf("p", true, "q", []any{2, 1})))

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	fc, err := c.Fingerprint()
	require.NoError(t, err)

	assert.Len(t, fa, 64)
	assert.Equal(t, fa, fb, "key order does not matter")
	assert.NotEqual(t, fa, fc, "list order matters")
}

func TestRecordDumpLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	rec := collections.NewRecord(arr.MapOf("k", "v"), collections.WithLogger(debugLogger(&buf)))
	assert.Same(t, rec, rec.Dump())
	assert.True(t, strings.Contains(buf.String(), "level=INFO"))
	assert.Contains(t, buf.String(), "record")
}

func TestRecordSilentByDefault(t *testing.T) {
	rec := collections.NewRecord(nil, collections.WithLogger(nil))
	assert.NotPanics(t, func() {
		rec.Forget("missing").Dump()
	})
}

func TestRecordUsesDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	collections.SetDefaultLogger(debugLogger(&buf))
	t.Cleanup(func() { collections.SetDefaultLogger(nil) })

	collections.NewRecord(arr.MapOf("k", "v")).Forget("missing").Dump()
	assert.Contains(t, buf.String(), "forget skipped missing path")
	assert.Contains(t, buf.String(), "msg=record")

	var own bytes.Buffer
	buf.Reset()
	collections.NewRecord(nil, collections.WithLogger(debugLogger(&own))).Dump()
	assert.Empty(t, buf.String(), "an explicit logger wins")
	assert.Contains(t, own.String(), "msg=record")
}

func TestRecordMacro(t *testing.T) {
	t.Cleanup(collections.FlushMacros)
	collections.RegisterMacro("addDefault", func(target any, args ...any) any {
		return target.(*collections.Record).Add(args[0].(string), args[1])
	})

	rec := collections.NewRecord(arr.MapOf("a", 1))
	got, err := rec.Macro("addDefault", "b", 2)
	require.NoError(t, err)
	assert.Same(t, rec, got)
	assert.Equal(t, `{"a":1,"b":2}`, rec.String())

	_, err = rec.Macro("addDefault", "a", 9)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Get("a"), "existing keys are kept")

	_, err = rec.Macro("missing")
	require.ErrorIs(t, err, collections.ErrMacroNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := arr.ToJSON(v)
	require.NoError(t, err)
	return string(b)
}
