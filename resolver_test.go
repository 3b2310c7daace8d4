package loom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolveCanonical_Passthrough(t *testing.T) {
	c := New()

	canonical, err := c.res.resolveCanonical("not-an-alias")
	require.NoError(t, err)
	assert.Equal(t, "not-an-alias", canonical)
}

func TestResolver_ResolveCanonical_Chain(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAlias("a", "b"))
	require.NoError(t, c.RegisterAlias("b", "c"))

	canonical, err := c.res.resolveCanonical("a")
	require.NoError(t, err)
	assert.Equal(t, "c", canonical)

	canonical, err = c.res.resolveCanonical("b")
	require.NoError(t, err)
	assert.Equal(t, "c", canonical)
}

func TestResolver_ResolveCanonical_DanglingTargetIsLegal(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAlias("a", "nothing-here"))

	// Alias registration does not require the target to resolve; the chain
	// simply terminates at the dangling name.
	canonical, err := c.res.resolveCanonical("a")
	require.NoError(t, err)
	assert.Equal(t, "nothing-here", canonical)
}

func TestResolver_ResolveCanonical_SelfCycle(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAlias("p", "p"))

	_, err := c.res.resolveCanonical("p")
	require.Error(t, err)

	var cycle AliasCycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "p", cycle.Alias)

	if diff := cmp.Diff([]string{"p", "p"}, cycle.Path); diff != "" {
		t.Errorf("alias cycle path mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_ResolveCanonical_LongCycle(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAlias("a", "b"))
	require.NoError(t, c.RegisterAlias("b", "c"))
	require.NoError(t, c.RegisterAlias("c", "a"))

	_, err := c.res.resolveCanonical("a")

	var cycle AliasCycleError
	require.ErrorAs(t, err, &cycle)

	if diff := cmp.Diff([]string{"a", "b", "c", "a"}, cycle.Path); diff != "" {
		t.Errorf("alias cycle path mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_Classify_ExplicitFactory(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterFactory("svc", func(*Container, string, Options) (any, error) {
		return "explicit", nil
	}))

	cls := c.res.classify(c, "svc")
	assert.Equal(t, producerFactory, cls.kind)
	require.NotNil(t, cls.factory)
}

func TestResolver_Classify_ExplicitFactoryBeatsAbstract(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAbstractFactory(NewAbstractFactory(
		func(*Container, string) bool { return true },
		func(*Container, string, Options) (any, error) { return "abstract", nil },
	)))
	require.NoError(t, c.RegisterFactory("svc", func(*Container, string, Options) (any, error) {
		return "explicit", nil
	}))

	cls := c.res.classify(c, "svc")
	assert.Equal(t, producerFactory, cls.kind)
}

func TestResolver_Classify_AbstractOrder(t *testing.T) {
	c := New()

	first := NewAbstractFactory(
		func(_ *Container, name string) bool { return name == "svc" },
		func(*Container, string, Options) (any, error) { return "first", nil },
	)
	second := NewAbstractFactory(
		func(_ *Container, name string) bool { return true },
		func(*Container, string, Options) (any, error) { return "second", nil },
	)
	require.NoError(t, c.RegisterAbstractFactory(first))
	require.NoError(t, c.RegisterAbstractFactory(second))

	cls := c.res.classify(c, "svc")
	require.Equal(t, producerAbstract, cls.kind)

	instance, err := cls.abstract.Create(c, "svc", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", instance)

	// A name the first predicate rejects falls through to the second.
	cls = c.res.classify(c, "other")
	require.Equal(t, producerAbstract, cls.kind)

	instance, err = cls.abstract.Create(c, "other", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", instance)
}

func TestResolver_Classify_Unresolvable(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterAbstractFactory(NewAbstractFactory(
		func(*Container, string) bool { return false },
		func(*Container, string, Options) (any, error) { return nil, nil },
	)))

	cls := c.res.classify(c, "missing")
	assert.Equal(t, producerUnresolvable, cls.kind)
}
