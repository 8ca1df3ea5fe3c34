package view

import (
	"fmt"
	"sort"
	"strings"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/common/metrics"
	"ethics-workflow/internal/template"
)

// ViewRenderer is one instantiated renderer. Init receives the ViewShape
// before ViewReady runs the renderer's own lifecycle; the loader calls
// both back to back so the instance is fully set up synchronously.
type ViewRenderer interface {
	Init(shape *ViewShape) error
	ViewReady() error
	ComponentID() string
	Destroy()
}

// RendererFactory creates one renderer instance.
type RendererFactory func() ViewRenderer

// RendererRegistry maps component types to renderer factories. Like the
// converter registry it must be complete before first use.
type RendererRegistry struct {
	factories map[template.ComponentType]RendererFactory
}

func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{factories: make(map[template.ComponentType]RendererFactory)}
}

func (r *RendererRegistry) Register(t template.ComponentType, f RendererFactory) {
	r.factories[t] = f
}

// Factory returns the factory for t, or a registry error.
func (r *RendererRegistry) Factory(t template.ComponentType) (RendererFactory, error) {
	f, ok := r.factories[t]
	if !ok {
		return nil, commonerrors.NewNoRendererError(string(t))
	}
	return f, nil
}

// EnsureComplete verifies every component type has a renderer.
func (r *RendererRegistry) EnsureComplete() error {
	var missing []string
	for _, t := range template.AllComponentTypes {
		if _, ok := r.factories[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("renderer registry incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Loader instantiates renderers into named hosts and tracks every created
// instance for later teardown. One loader is scoped to one display tree
// and must be destroyed when that tree unmounts.
type Loader struct {
	registry  *RendererRegistry
	instances map[string][]ViewRenderer
}

func NewLoader(registry *RendererRegistry) *Loader {
	return &Loader{
		registry:  registry,
		instances: make(map[string][]ViewRenderer),
	}
}

// Load creates the renderer for shape.Component inside the host named by
// hostID. The instance is initialised with the shape, tracked, and its
// lifecycle is flushed before Load returns, so state it computes is
// visible to the next sibling's setup.
func (l *Loader) Load(hostID string, shape *ViewShape) (ViewRenderer, error) {
	componentType := shape.Component.Base().Type
	factory, err := l.registry.Factory(componentType)
	if err != nil {
		return nil, err
	}

	v := factory()
	if err := v.Init(shape); err != nil {
		return nil, err
	}
	l.instances[hostID] = append(l.instances[hostID], v)

	if err := v.ViewReady(); err != nil {
		return nil, err
	}
	metrics.ViewsLoaded.WithLabelValues(string(componentType)).Inc()
	return v, nil
}

// Instances returns the live renderers under hostID.
func (l *Loader) Instances(hostID string) []ViewRenderer {
	return l.instances[hostID]
}

// Destroy tears down and forgets every instance under the given host ids;
// with no arguments it destroys everything the loader created.
func (l *Loader) Destroy(hostIDs ...string) {
	if len(hostIDs) == 0 {
		for id := range l.instances {
			hostIDs = append(hostIDs, id)
		}
	}
	for _, id := range hostIDs {
		for _, v := range l.instances[id] {
			v.Destroy()
		}
		delete(l.instances, id)
	}
}
