package tracelog

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greeterSpec() ContractSpec {
	return ContractSpec{
		Name: "greeter",
		Operations: []OperationSpec{
			{
				Name:     "Greet",
				Level:    LevelInfo,
				Template: "Hello {name}",
				Params:   []Param{{Name: "name", Kind: KindString}},
			},
			{
				Name:     "Fail",
				Level:    LevelError,
				Template: "failure {code}",
				Params: []Param{
					{Name: "ex", Kind: KindError},
					{Name: "code", Kind: KindInt},
				},
			},
		},
	}
}

func TestGetOrCompileCaches(t *testing.T) {
	r := NewRegistry()

	first, err := r.GetOrCompile(greeterSpec())
	require.NoError(t, err)
	second, err := r.GetOrCompile(greeterSpec())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), r.compileCount())
	assert.Equal(t, []string{"Greet", "Fail"}, first.Operations())
}

func TestGetOrCompileConcurrentFirstUse(t *testing.T) {
	const goroutines = 32

	r := NewRegistry()
	results := make([]*CompiledContract, goroutines)
	errs := make([]error, goroutines)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < goroutines; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i], errs[i] = r.GetOrCompile(greeterSpec())
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
	}
	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, int64(1), r.compileCount())
}

func TestGetOrCompileErrors(t *testing.T) {
	t.Run("duplicate operation name", func(t *testing.T) {
		spec := greeterSpec()
		spec.Operations = append(spec.Operations, spec.Operations[0])

		_, err := NewRegistry().GetOrCompile(spec)
		var cerr *ContractError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "Greet", cerr.Operation)
		assert.Contains(t, cerr.Error(), "duplicate")
	})

	t.Run("missing level", func(t *testing.T) {
		spec := greeterSpec()
		spec.Operations[0].Level = levelUnset

		_, err := NewRegistry().GetOrCompile(spec)
		var cerr *ContractError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Error(), "severity level")
	})

	t.Run("bad template names the token", func(t *testing.T) {
		spec := greeterSpec()
		spec.Operations[0].Template = "Hello {unknown}"

		_, err := NewRegistry().GetOrCompile(spec)
		var terr *TemplateError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "{unknown}", terr.Token)
		assert.Equal(t, "greeter", terr.Contract)
		assert.Equal(t, "Greet", terr.Operation)
	})

	t.Run("classification failure carries contract name", func(t *testing.T) {
		spec := greeterSpec()
		spec.Operations[1].Params = append(spec.Operations[1].Params, Param{Name: "ex2", Kind: KindError})

		_, err := NewRegistry().GetOrCompile(spec)
		var clerr *ClassificationError
		require.ErrorAs(t, err, &clerr)
		assert.Equal(t, "greeter", clerr.Contract)
	})

	t.Run("empty contract spec", func(t *testing.T) {
		_, err := NewRegistry().GetOrCompile(ContractSpec{})
		var cerr *ContractError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("failed compile is not cached", func(t *testing.T) {
		r := NewRegistry()

		bad := greeterSpec()
		bad.Operations[0].Template = "Hello {oops}"
		_, err := r.GetOrCompile(bad)
		require.Error(t, err)
		assert.Equal(t, int64(0), r.compileCount())

		// the same name compiles fine once the spec is fixed
		c, err := r.GetOrCompile(greeterSpec())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("one bad contract leaves others usable", func(t *testing.T) {
		r := NewRegistry()

		bad := greeterSpec()
		bad.Name = "broken"
		bad.Operations[0].Template = "{nope}"
		_, err := r.GetOrCompile(bad)
		require.Error(t, err)

		good, err := r.GetOrCompile(greeterSpec())
		require.NoError(t, err)
		assert.NotNil(t, good)
	})
}

func TestDispatcherFire(t *testing.T) {
	r := NewRegistry()
	c, err := r.GetOrCompile(greeterSpec())
	require.NoError(t, err)

	sink := &captureSink{}
	disp := c.Bind("orders", sink)

	require.NoError(t, disp.Fire("Greet", "Ada"))

	records := sink.all()
	require.Len(t, records, 1)
	assert.Equal(t, "orders", records[0].Logger)
	assert.Equal(t, LevelInfo, records[0].Level)
	assert.Equal(t, "Hello Ada", records[0].Message)
	assert.Equal(t, "Ada", records[0].fieldValue("name"))
	assert.NoError(t, records[0].Err)
}

func TestDispatcherFireException(t *testing.T) {
	c, err := NewRegistry().GetOrCompile(greeterSpec())
	require.NoError(t, err)

	sink := &captureSink{}
	disp := c.Bind("orders", sink)

	boom := errors.New("boom")
	require.NoError(t, disp.Fire("Fail", boom, 42))

	records := sink.all()
	require.Len(t, records, 1)
	assert.Equal(t, "failure 42", records[0].Message)
	assert.Equal(t, 42, records[0].fieldValue("code"))
	assert.Same(t, boom, records[0].Err)
}

func TestDispatcherFireErrors(t *testing.T) {
	c, err := NewRegistry().GetOrCompile(greeterSpec())
	require.NoError(t, err)
	disp := c.Bind("orders", &captureSink{})

	t.Run("unknown operation", func(t *testing.T) {
		require.Error(t, disp.Fire("Nope"))
	})

	t.Run("format error reaches the caller", func(t *testing.T) {
		err := disp.Fire("Greet", 42)
		var ferr *FormatError
		require.ErrorAs(t, err, &ferr)
	})
}

func TestDispatcherNoneLevelNeverEmits(t *testing.T) {
	spec := ContractSpec{
		Name: "silent",
		Operations: []OperationSpec{
			{Name: "Quiet", Level: LevelNone, Template: "never {v}", Params: []Param{{Name: "v", Kind: KindString}}},
		},
	}
	c, err := NewRegistry().GetOrCompile(spec)
	require.NoError(t, err)

	sink := &captureSink{}
	require.NoError(t, c.Bind("x", sink).Fire("Quiet", "v"))
	assert.Empty(t, sink.all())
}

func TestSharedCompiledContractPerOwner(t *testing.T) {
	r := NewRegistry()

	first, err := r.GetOrCompile(greeterSpec())
	require.NoError(t, err)
	second, err := r.GetOrCompile(greeterSpec())
	require.NoError(t, err)
	require.Same(t, first, second)

	a := &captureSink{}
	b := &captureSink{}
	require.NoError(t, first.Bind("alpha", a).Fire("Greet", "x"))
	require.NoError(t, second.Bind("beta", b).Fire("Greet", "y"))

	assert.Equal(t, "alpha", a.all()[0].Logger)
	assert.Equal(t, "beta", b.all()[0].Logger)
}

func TestDefaultRegistrySingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDescribe(t *testing.T) {
	c, err := NewRegistry().GetOrCompile(greeterSpec())
	require.NoError(t, err)

	out := c.Describe()
	assert.Contains(t, out, "contract greeter (2 operations)")
	assert.Contains(t, out, "Greet")
	assert.Contains(t, out, `"Hello {0}"`)
	assert.Contains(t, out, "ex:error")
}
