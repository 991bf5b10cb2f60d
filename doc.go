// Package ivsurface is a batch Black-Scholes implied-volatility solver:
// whole option surfaces in, volatility surfaces out.
//
// 🚀 What is ivsurface?
//
//	A small numeric library plus a CSV tool that bring together:
//		• matrix/      : row-major Dense containers with numpy-style broadcasting
//		• bsm/         : the Black-Scholes pricing kernel with vega, vomma, ultima
//		• rational/    : Li's (2006) rational approximation for the initial guess
//		• householder/ : third-order active-set refinement, parallel per round
//		• impvol/      : the public Solve operation tying the stages together
//		• cmd/ivsurface : CSV in, CSV with an iv column out
//
// ✨ Why choose ivsurface?
//
//   - Partial success – a bad quote is a NaN, never a failed batch
//   - Cheap rounds – converged quotes are never priced again
//   - Deterministic – identical bits for any number of workers
//
// Quick example:
//
//	iv, err := impvol.Solve(impvol.Input{
//		CP: impvol.Scalar(impvol.Calls), P: prices, S: impvol.Scalar(100),
//		K: impvol.Row(90, 100, 110), Tau: impvol.Col(0.25, 0.5),
//		R: impvol.Scalar(0.01), Q: impvol.Scalar(0.03),
//	})
//
// See examples/ for complete programs.
//
//	go get github.com/katalvlaran/ivsurface
package ivsurface
