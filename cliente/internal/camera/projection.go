package camera

import (
	"PolyDraw/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

const parallelEpsilon = 1e-6

// Unproject leva uma coordenada normalizada (NDC) e uma profundidade em [-1, 1]
// de volta para o espaço de mundo.
func (c *CameraController) Unproject(ndc mgl32.Vec2, depth float32) mgl32.Vec3 {
	inv := c.Projection().Mul4(c.View()).Inv()
	v := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), depth, 1})
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}

// Ray retorna o raio (origem no plano near, direção unitária) que passa pela coordenada NDC.
func (c *CameraController) Ray(ndc mgl32.Vec2) (origin, dir mgl32.Vec3) {
	near := c.Unproject(ndc, -1)
	far := c.Unproject(ndc, 1)
	return near, far.Sub(near).Normalize()
}

// Project intersecta o raio da coordenada NDC com o plano de referência z=0.
// Retorna false se o raio for paralelo, apontar para longe ou cair fora da grade.
func (c *CameraController) Project(ndc mgl32.Vec2) (mgl32.Vec3, bool) {
	origin, dir := c.Ray(ndc)
	hit, ok := IntersectGround(origin, dir)
	if !ok {
		return mgl32.Vec3{}, false
	}
	if e := c.PlaneHalfExtent; e > 0 {
		if !util.Between(-e, hit.X(), e) || !util.Between(-e, hit.Y(), e) {
			return mgl32.Vec3{}, false
		}
	}
	return hit, true
}

// IntersectGround intersecta um raio com o plano z=0.
func IntersectGround(origin, dir mgl32.Vec3) (mgl32.Vec3, bool) {
	if util.Abs(dir.Z()) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := -origin.Z() / dir.Z()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	hit := origin.Add(dir.Mul(t))
	hit[2] = 0
	return hit, true
}
