// Package checker holds a colour chart: an ordered set of reflectance
// patches rendered with one observer and, optionally, one illuminant.
//
// A Checker is the only mutable object of the pipeline. Changing the
// observer drops every computed value; changing the illuminant drops the
// values that were rendered under the old one. Batch operations either
// update every patch or none. A Checker must not be used from several
// goroutines at once; the reference tables it is built from may be shared.
package checker

import (
	"fmt"
	"runtime"

	"cogentcore.org/core/base/ordmap"
	"golang.org/x/sync/errgroup"

	"github.com/weaming/colorchecker-go/colorimetry"
	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/matrix"
	"github.com/weaming/colorchecker-go/refdata"
	"github.com/weaming/colorchecker-go/spectral"
)

// Tables resolves reference data by exact name. *refdata.Registry
// implements it.
type Tables interface {
	Observer(name string) (spectral.MultiFunction, error)
	Illuminant(name string) (spectral.Function, error)
	Checker(name string) (*refdata.Table, error)
	Colorspace(name string) (*colorspace.RGBColorspace, error)
}

// Vectors is a name-keyed snapshot in patch order.
type Vectors = ordmap.Map[string, matrix.Vector3]

// Checker is a named colour chart.
type Checker struct {
	name    string
	patches *ordmap.Map[string, *Patch]

	observerName string
	cmfs         spectral.MultiFunction

	illuminantName string
	illuminant     spectral.Function

	shape      spectral.Shape
	colorspace *colorspace.RGBColorspace

	log *Logger
}

// New builds a checker from an ordered reflectance table. A nil logger
// discards progress output.
func New(name string, table *refdata.Table, log *Logger) (*Checker, error) {
	if log == nil {
		log = Discard()
	}
	c := &Checker{name: name, log: log, shape: spectral.DefaultShape}
	if err := c.setPatches(table); err != nil {
		return nil, err
	}
	return c, nil
}

// Load builds a checker from the named table in src.
func Load(src Tables, name string, log *Logger) (*Checker, error) {
	table, err := src.Checker(name)
	if err != nil {
		return nil, err
	}
	return New(name, table, log)
}

func (c *Checker) setPatches(table *refdata.Table) error {
	if table == nil || table.Len() == 0 {
		return &spectral.DomainError{Param: "checker", Value: c.name, Reason: "no patches"}
	}
	patches := ordmap.New[string, *Patch]()
	for _, kv := range table.Order {
		if kv.Value.IsZero() {
			return &spectral.DomainError{Param: "patch", Value: kv.Key, Reason: "no reflectance samples"}
		}
		patches.Add(kv.Key, NewPatch(kv.Key, kv.Value))
	}
	c.patches = patches
	return nil
}

// SelectChart replaces the patches with the named table from src. On
// failure the checker is left unchanged.
func (c *Checker) SelectChart(src Tables, name string) error {
	table, err := src.Checker(name)
	if err != nil {
		return err
	}
	old := c.name
	c.name = name
	if err := c.setPatches(table); err != nil {
		c.name = old
		return err
	}
	c.colorspace = nil
	c.log.Info("色卡: %s (%d 个色块)", name, c.patches.Len())
	return nil
}

// Name returns the chart name.
func (c *Checker) Name() string { return c.name }

// FullName returns "ColorChecker24 - <name>(<illuminant>)", or the name
// alone when no illuminant is selected.
func (c *Checker) FullName() string {
	if c.illuminantName == "" {
		return "ColorChecker24 - " + c.name
	}
	return fmt.Sprintf("ColorChecker24 - %s(%s)", c.name, c.illuminantName)
}

// Len returns the number of patches.
func (c *Checker) Len() int { return c.patches.Len() }

// Names returns the patch names in chart order.
func (c *Checker) Names() []string { return c.patches.Keys() }

// Patch looks up a patch by name.
func (c *Checker) Patch(name string) (*Patch, error) {
	p, ok := c.patches.ValueByKeyTry(name)
	if !ok {
		return nil, &colorimetry.NotFoundError{Kind: "patch", Name: name}
	}
	return p, nil
}

// ObserverName returns the selected observer, or "" before one is set.
func (c *Checker) ObserverName() string { return c.observerName }

// IlluminantName returns the selected illuminant, or "" when none is set.
func (c *Checker) IlluminantName() string { return c.illuminantName }

// Shape returns the grid of the last computation.
func (c *Checker) Shape() spectral.Shape { return c.shape }

// Colorspace returns the colorspace of the stored RGB, nil when RGB is not
// current.
func (c *Checker) Colorspace() *colorspace.RGBColorspace { return c.colorspace }

// SetShape sets the grid used by Recompute.
func (c *Checker) SetShape(s spectral.Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.shape = s
	return nil
}

// SetObserver replaces the colour matching functions and drops every
// computed XYZ and RGB.
func (c *Checker) SetObserver(name string, cmfs spectral.MultiFunction) {
	c.observerName, c.cmfs = name, cmfs
	for _, p := range c.patches.Values() {
		p.invalidate()
	}
	c.colorspace = nil
	debug("observer set", "checker", c.name, "observer", name)
}

// SelectObserver sets the named observer from src and recomputes unweighted
// XYZ for every patch.
func (c *Checker) SelectObserver(src Tables, name string) error {
	cmfs, err := src.Observer(name)
	if err != nil {
		return err
	}
	c.SetObserver(name, cmfs)
	return c.Recompute(false)
}

// SetIlluminant replaces the illuminant. XYZ rendered under the previous
// illuminant is dropped; unweighted XYZ stays valid.
func (c *Checker) SetIlluminant(name string, spd spectral.Function) {
	c.illuminantName, c.illuminant = name, spd
	c.dropWeighted()
	debug("illuminant set", "checker", c.name, "illuminant", name)
}

// SelectIlluminant sets the named illuminant from src.
func (c *Checker) SelectIlluminant(src Tables, name string) error {
	spd, err := src.Illuminant(name)
	if err != nil {
		return err
	}
	c.SetIlluminant(name, spd)
	return nil
}

// ClearIlluminant removes the illuminant.
func (c *Checker) ClearIlluminant() {
	c.illuminantName, c.illuminant = "", spectral.Function{}
	c.dropWeighted()
}

func (c *Checker) dropWeighted() {
	dropped := false
	for _, p := range c.patches.Values() {
		if p.Weighted() {
			p.invalidate()
			dropped = true
		}
	}
	if dropped {
		c.colorspace = nil
	}
}

// Recompute runs RecomputeAll on the checker's current shape.
func (c *Checker) Recompute(weighted bool) error {
	return c.RecomputeAll(c.shape, weighted)
}

// RecomputeAll computes XYZ for every patch on shape, rendered under the
// illuminant when weighted is set. Patches are integrated in parallel and
// committed together once all of them succeeded.
func (c *Checker) RecomputeAll(shape spectral.Shape, weighted bool) error {
	if c.cmfs.IsZero() {
		return &colorimetry.StateError{Op: "recompute", Reason: "no observer selected"}
	}
	var illum spectral.Function
	mode := "unweighted"
	if weighted {
		if c.illuminant.IsZero() {
			return &colorimetry.StateError{Op: "render", Reason: "no illuminant selected"}
		}
		illum = c.illuminant
		mode = c.illuminantName
	}

	c.log.Step("计算 XYZ", mode)
	in, err := colorimetry.NewIntegrator(c.cmfs, illum, shape)
	if err != nil {
		c.log.Done("失败")
		return err
	}

	patches := c.patches.Values()
	results := make([]matrix.Vector3, len(patches))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range patches {
		g.Go(func() error {
			xyz, err := p.integrate(in)
			results[i] = xyz
			return err
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Done("失败")
		return err
	}

	for i, p := range patches {
		p.setXYZ(results[i], weighted)
	}
	c.shape = shape
	c.colorspace = nil
	debug("xyz computed", "checker", c.name, "shape", shape.String(), "k", in.Normalisation())
	c.log.Done(fmt.Sprintf("%d 个色块 @ %s", len(patches), shape))
	return nil
}

// ConvertAll converts every patch's XYZ to linear and encoded RGB in cs.
// If a patch has no XYZ the error names the first such patch and nothing
// is stored.
func (c *Checker) ConvertAll(cs *colorspace.RGBColorspace) error {
	if cs == nil {
		return &colorimetry.StateError{Op: "convert", Reason: "no colorspace selected"}
	}
	patches := c.patches.Values()
	for _, p := range patches {
		if err := p.requireXYZ("convert"); err != nil {
			return err
		}
	}

	c.log.Step("转换 RGB", cs.Name)
	type pair struct{ rgb, enc matrix.Vector3 }
	results := make([]pair, len(patches))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range patches {
		g.Go(func() error {
			rgb, enc, err := p.Convert(cs)
			results[i] = pair{rgb, enc}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Done("失败")
		return err
	}

	for i, p := range patches {
		p.setRGB(results[i].rgb, results[i].enc)
	}
	c.colorspace = cs
	c.log.Done(fmt.Sprintf("%d 个色块", len(patches)))
	return nil
}

// SelectColorspace converts every patch to the named colorspace from src.
func (c *Checker) SelectColorspace(src Tables, name string) error {
	cs, err := src.Colorspace(name)
	if err != nil {
		return err
	}
	return c.ConvertAll(cs)
}

// snapshot collects f over every patch in order, failing on the first
// patch f rejects.
func (c *Checker) snapshot(f func(p *Patch) (matrix.Vector3, error)) (*Vectors, error) {
	out := ordmap.New[string, matrix.Vector3]()
	for _, kv := range c.patches.Order {
		v, err := f(kv.Value)
		if err != nil {
			return nil, err
		}
		out.Add(kv.Key, v)
	}
	return out, nil
}

// AsXYZ returns the XYZ of every patch.
func (c *Checker) AsXYZ() (*Vectors, error) {
	return c.snapshot(func(p *Patch) (matrix.Vector3, error) {
		return p.xyz, p.requireXYZ("xyz")
	})
}

func (c *Checker) storedRGB(op string, encoded bool) (*Vectors, error) {
	return c.snapshot(func(p *Patch) (matrix.Vector3, error) {
		if !p.hasRGB {
			return matrix.Vector3{}, &colorimetry.StateError{Op: op, Patch: p.name, Reason: "RGB not converted"}
		}
		if encoded {
			return p.encoded, nil
		}
		return p.rgb, nil
	})
}

// AsRGB returns the linear RGB stored by the last ConvertAll.
func (c *Checker) AsRGB() (*Vectors, error) { return c.storedRGB("rgb", false) }

// AsEncodedRGB returns the display-encoded RGB stored by the last
// ConvertAll.
func (c *Checker) AsEncodedRGB() (*Vectors, error) { return c.storedRGB("encoded rgb", true) }

// AsSRGB returns display-encoded sRGB derived from the current XYZ.
func (c *Checker) AsSRGB() (*Vectors, error) {
	return c.snapshot((*Patch).ToSRGB)
}

// AsXyY returns the chromaticity and luminance of every patch.
func (c *Checker) AsXyY() (*Vectors, error) {
	return c.snapshot((*Patch).ToXyY)
}

// AsLab returns L*a*b* of every patch relative to ReferenceWhite.
func (c *Checker) AsLab() (*Vectors, error) {
	white, err := c.ReferenceWhite()
	if err != nil {
		return nil, err
	}
	return c.LabRelativeTo(white)
}

// LabRelativeTo returns L*a*b* of every patch relative to white.
func (c *Checker) LabRelativeTo(white matrix.Vector3) (*Vectors, error) {
	return c.snapshot(func(p *Patch) (matrix.Vector3, error) {
		return p.ToLab(white)
	})
}

// ReferenceWhite returns the XYZ of the perfect reflector under the
// current conditions: the illuminant when the patches were rendered under
// it, otherwise the equal-energy white of the observer.
func (c *Checker) ReferenceWhite() (matrix.Vector3, error) {
	if c.cmfs.IsZero() {
		return matrix.Vector3{}, &colorimetry.StateError{Op: "reference white", Reason: "no observer selected"}
	}
	var illum spectral.Function
	if c.weighted() {
		illum = c.illuminant
	}
	return colorimetry.WhitePoint(illum, c.cmfs, c.shape)
}

func (c *Checker) weighted() bool {
	for _, p := range c.patches.Values() {
		if !p.Weighted() {
			return false
		}
	}
	return !c.illuminant.IsZero()
}
