package testutil

import (
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/domain/quantity"
	"github.com/zjrosen/particlezoo/internal/physconst"
)

// Constants is a hand-set particle.Constants. Masses are in kilograms.
type Constants struct {
	Electron float64
	Proton   float64
	Neutron  float64
}

var _ particle.Constants = Constants{}

func (c Constants) ElectronMass() quantity.Quantity { return quantity.Kilograms(c.Electron) }
func (c Constants) ProtonMass() quantity.Quantity   { return quantity.Kilograms(c.Proton) }
func (c Constants) NeutronMass() quantity.Quantity  { return quantity.Kilograms(c.Neutron) }

// Scaled returns the default release's masses multiplied by factor.
func Scaled(factor float64) Constants {
	d := physconst.Default()
	return Constants{
		Electron: d.ElectronMass().Value * factor,
		Proton:   d.ProtonMass().Value * factor,
		Neutron:  d.NeutronMass().Value * factor,
	}
}
