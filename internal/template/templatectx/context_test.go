// internal/template/templatectx/context_test.go
package templatectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethics-workflow/internal/template"
)

// ==========================
// Test Helper Functions
// ==========================

func textComponent(componentID, content string) *template.TextComponent {
	return &template.TextComponent{
		ComponentBase: template.ComponentBase{
			Type:        template.TypeText,
			Title:       componentID,
			ComponentID: componentID,
		},
		Content: content,
	}
}

func container(containerID, componentID string, children ...template.ApplicationComponent) *template.ContainerComponent {
	return &template.ContainerComponent{
		ComponentBase: template.ComponentBase{
			Type:        template.TypeContainer,
			ComponentID: componentID,
			Composite:   true,
		},
		ID:         containerID,
		Components: children,
	}
}

func section(componentID string, children ...template.ApplicationComponent) *template.SectionComponent {
	return &template.SectionComponent{
		ComponentBase: template.ComponentBase{
			Type:        template.TypeSection,
			Title:       componentID,
			ComponentID: componentID,
			Composite:   true,
		},
		Components: children,
	}
}

func testTemplate(id string, components ...template.ApplicationComponent) *template.ApplicationTemplate {
	return &template.ApplicationTemplate{ID: id, Name: id, Components: components}
}

// ==========================
// Store Semantics
// ==========================

func TestContext_AddRemoveTemplate(t *testing.T) {
	ctx := New()
	tpl := testTemplate("t1")

	ctx.AddTemplate(tpl)
	assert.Same(t, tpl, ctx.Template("t1"))

	removed := ctx.RemoveTemplate("t1")
	assert.Same(t, tpl, removed)
	assert.Nil(t, ctx.Template("t1"))
	assert.Nil(t, ctx.RemoveTemplate("t1"))
}

func TestContext_SetCurrent(t *testing.T) {
	ctx := New()
	ctx.AddTemplate(testTemplate("t1"))
	ctx.AddTemplate(testTemplate("t2"))

	ctx.SetCurrent("t1")
	require.NotNil(t, ctx.Current())
	assert.Equal(t, "t1", ctx.Current().ID)

	// Unknown id is a no-op.
	ctx.SetCurrent("t9")
	assert.Equal(t, "t1", ctx.Current().ID)

	// Empty id clears.
	ctx.SetCurrent("")
	assert.Nil(t, ctx.Current())
}

func TestContext_RemovingCurrentClearsIt(t *testing.T) {
	ctx := New()
	ctx.AddTemplate(testTemplate("t1"))
	ctx.SetCurrent("t1")

	ctx.RemoveTemplate("t1")
	assert.Nil(t, ctx.Current())
}

func TestContext_Clear(t *testing.T) {
	ctx := New()
	ctx.AddTemplate(testTemplate("t1"))
	ctx.SetCurrent("t1")

	ctx.Clear()
	assert.Nil(t, ctx.Current())
	assert.Nil(t, ctx.Template("t1"))
	assert.Empty(t, ctx.Templates())
}

// ==========================
// SubComponent Search
// ==========================

func TestContext_SubComponent(t *testing.T) {
	deep := textComponent("deep", "found me")
	tpl := testTemplate("t1",
		section("s1",
			container("cA", "c-a",
				section("s2", deep),
			),
		),
	)
	ctx := New()
	ctx.AddTemplate(tpl)

	found := ctx.SubComponent("t1", "deep", false)
	require.NotNil(t, found)
	assert.Same(t, template.ApplicationComponent(deep), found)

	// Container lookup matches the container id, not the componentId.
	byContainerID := ctx.SubComponent("t1", "cA", true)
	require.NotNil(t, byContainerID)
	assert.Equal(t, "c-a", byContainerID.Base().ComponentID)

	assert.Nil(t, ctx.SubComponent("t1", "cA", false))
	assert.Nil(t, ctx.SubComponent("t1", "missing", false))
	assert.Nil(t, ctx.SubComponent("t9", "deep", false))
}

func TestContext_SubComponentMatch_Index(t *testing.T) {
	first := textComponent("first", "1")
	second := textComponent("second", "2")
	tpl := testTemplate("t1", section("s1", first, second))

	ctx := New()
	ctx.AddTemplate(tpl)

	m := ctx.SubComponentMatch("t1", "second", false)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, "s1", m.Parent.Base().ComponentID)
	assert.Same(t, template.ApplicationComponent(second), m.Siblings[m.Index])
}
