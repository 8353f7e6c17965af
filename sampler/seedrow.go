package sampler

import "github.com/strongfield/adksampler/amplitude"

// packRow lays a Candidate out as a SeedRow of the width implied by cfg:
// (x0,y0[,z0],kx,ky[,kz],tr,rate[,phase]).
func packRow(c amplitude.Candidate, cfg Config) []float64 {
	var row []float64
	if cfg.dimension == 3 {
		row = []float64{c.X0, c.Y0, c.Z0, c.KX, c.KY, c.KZ, c.Tr, c.Rate}
	} else {
		row = []float64{c.X0, c.Y0, c.KX, c.KY, c.Tr, c.Rate}
	}
	if cfg.phaseMethod != CTMC {
		row = append(row, c.Phase)
	}
	return row
}
