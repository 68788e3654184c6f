package classsupport_test

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classfmt/go-sdk/internal/testutil"
	"github.com/classfmt/go-sdk/pkg/classsupport"
	"github.com/classfmt/go-sdk/pkg/core"
)

func TestQualifiedName(t *testing.T) {
	w := testutil.PkgPath + ".Widget"

	tests := []struct {
		name  string
		class core.Class
		want  string
	}{
		{"nil", nil, "null"},
		{"predeclared", reflect.TypeOf(true), "bool"},
		{"error", classsupport.ClassOf[error](), "error"},
		{"stdlib named", reflect.TypeOf(time.Duration(0)), "time.Duration"},
		{"nested import path", reflect.TypeOf(url.URL{}), "net/url.URL"},
		{"fixture struct", testutil.WidgetClass, w},
		{"fixture interface", testutil.ShapeClass, testutil.PkgPath + ".Shape"},
		{"pointer", reflect.TypeOf(&time.Time{}), "*time.Time"},
		{"slice", reflect.TypeOf([]string{}), "[]string"},
		{"slice of pointers", reflect.TypeOf([]*testutil.Widget{}), "[]*" + w},
		{"array", reflect.TypeOf([4]int{}), "[4]int"},
		{"map", reflect.TypeOf(map[string]time.Duration{}), "map[string]time.Duration"},
		{"map of fixtures", reflect.TypeOf(map[testutil.Level][]testutil.Widget{}), "map[" + testutil.PkgPath + ".Level][]" + w},
		{"chan", reflect.TypeOf(make(chan int)), "chan int"},
		{"send chan", reflect.TypeOf(make(chan<- int)), "chan<- int"},
		{"recv chan", reflect.TypeOf(make(<-chan int)), "<-chan int"},
		{"chan of recv chan", reflect.TypeOf(make(chan (<-chan int))), "chan (<-chan int)"},
		{"func", reflect.TypeOf(func(int) string { return "" }), "func(int) string"},
		{"empty interface", classsupport.ClassOf[any](), "interface {}"},
		{"generic", reflect.TypeOf(testutil.Box[int]{}), testutil.PkgPath + ".Box[int]"},
		{"anonymous struct", reflect.TypeOf(struct{ A int }{}), "struct { A int }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classsupport.QualifiedName(tt.class))
		})
	}
}

func TestSimpleName(t *testing.T) {
	tests := []struct {
		name  string
		class core.Class
		want  string
	}{
		{"nil", nil, "null"},
		{"predeclared", reflect.TypeOf(""), "string"},
		{"stdlib named", reflect.TypeOf(url.URL{}), "URL"},
		{"fixture", testutil.GadgetClass, "Gadget"},
		{"pointer", reflect.TypeOf(&testutil.Widget{}), "*Widget"},
		{"slice of pointers", reflect.TypeOf([]*testutil.Widget{}), "[]*Widget"},
		{"array", reflect.TypeOf([2]testutil.Level{}), "[2]Level"},
		{"map", reflect.TypeOf(map[string]*url.URL{}), "map[string]*URL"},
		{"recv chan", reflect.TypeOf(make(<-chan testutil.Widget)), "<-chan Widget"},
		{"generic", reflect.TypeOf(testutil.Box[int]{}), "Box[int]"},
		{"generic over fixture", reflect.TypeOf(testutil.Box[testutil.Widget]{}), "Box[Widget]"},
		{"generic over composite", reflect.TypeOf(testutil.Box[[]*testutil.Widget]{}), "Box[[]*Widget]"},
		{"generic over stdlib map", reflect.TypeOf(testutil.Box[map[string]time.Duration]{}), "Box[map[string]Duration]"},
		{"nested generic", reflect.TypeOf(testutil.Box[testutil.Box[testutil.Level]]{}), "Box[Box[Level]]"},
		{"pointer to generic", reflect.TypeOf(&testutil.Box[url.URL]{}), "*Box[URL]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classsupport.SimpleName(tt.class))
		})
	}
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "null", classsupport.KindName(nil))
	assert.Equal(t, "struct", classsupport.KindName(testutil.WidgetClass))
	assert.Equal(t, "ptr", classsupport.KindName(reflect.TypeOf(&testutil.Widget{})))
	assert.Equal(t, "int", classsupport.KindName(testutil.LevelClass))
	assert.Equal(t, "interface", classsupport.KindName(classsupport.ClassOf[error]()))
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "null", classsupport.PackagePath(nil))
	assert.Equal(t, testutil.PkgPath, classsupport.PackagePath(testutil.WidgetClass))
	assert.Equal(t, "net/url", classsupport.PackagePath(reflect.TypeOf(url.URL{})))
	assert.Equal(t, "", classsupport.PackagePath(reflect.TypeOf(0)))
	assert.Equal(t, "", classsupport.PackagePath(reflect.TypeOf([]testutil.Widget{})))
}

func TestMapperByName(t *testing.T) {
	for _, name := range classsupport.MapperNames() {
		t.Run(name, func(t *testing.T) {
			m, err := classsupport.MapperByName(name)
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, "null", m(nil))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		m, err := classsupport.MapperByName("verbose")
		assert.Nil(t, m)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
		assert.Contains(t, err.Error(), `unknown mapper "verbose"`)
	})
}

func TestMapperNames(t *testing.T) {
	assert.Equal(t, []string{"kind", "package", "qualified", "simple"}, classsupport.MapperNames())
}
