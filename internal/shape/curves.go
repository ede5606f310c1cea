package shape

import (
	"math"
	"math/rand"
)

// genVortex 对数螺旋 + 随机扰动，z 方向厚度随 i 增大收窄到 0
func genVortex(w *pointWriter, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		angle := float64(i) * 0.02
		radius := 5 + float64(i)*0.0005
		x := math.Cos(angle)*radius + spread(rng, 2)
		y := math.Sin(angle)*radius + spread(rng, 2)
		z := spread(rng, 15) * (1 - float64(i)/float64(count))
		w.set(x, y, z)
	}
}

// genArchimedes 阿基米德螺旋 r = a + bθ，z 方向线性拉伸成螺旋线
func genArchimedes(w *pointWriter, count int, rng *rand.Rand) {
	const (
		a = 0.0
		b = 0.2
	)
	for i := 0; i < count; i++ {
		theta := float64(i) * 0.05
		r := a + b*theta
		x := r * math.Cos(theta)
		y := r * math.Sin(theta)
		z := float64(i)/float64(count)*20 - 10 + spread(rng, 1)
		w.set(x, y, z)
	}
}

// genCardioid 参数化心形
//
//	x = 1.2 * 16 sin³θ
//	y = 1.2 * (13cosθ - 5cos2θ - 2cos3θ - cos4θ)
func genCardioid(w *pointWriter, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		theta := float64(i) / float64(count) * math.Pi * 2
		s := math.Sin(theta)
		x := 1.2 * (16 * s * s * s)
		y := 1.2 * (13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta))
		z := spread(rng, 4)
		w.set(x, y, z)
	}
}

// genButterfly Fay 蝴蝶曲线，参数绕 12 圈
func genButterfly(w *pointWriter, count int, rng *rand.Rand) {
	const scale = 5.0
	for i := 0; i < count; i++ {
		u := float64(i) / float64(count) * 24 * math.Pi
		r := math.Exp(math.Sin(u)) - 2*math.Cos(4*u) + math.Pow(math.Sin((2*u-math.Pi)/24), 5)
		x := scale * r * math.Cos(u)
		y := scale * r * math.Sin(u)
		z := r*math.Cos(u/2)*2 + spread(rng, 1)
		w.set(x, y, z)
	}
}

// genRose 玫瑰线 r = 12cos(kθ)，k = 4
func genRose(w *pointWriter, count int, rng *rand.Rand) {
	const k = 4.0
	for i := 0; i < count; i++ {
		theta := float64(i) / float64(count) * math.Pi * 10
		r := 12 * math.Cos(k*theta)
		x := r * math.Cos(theta)
		y := r * math.Sin(theta)
		z := math.Sin(theta*5)*3 + spread(rng, 0.5)
		w.set(x, y, z)
	}
}

// genLemniscate 伯努利双扭线，z 方向加一个 sin(2t) 的扭转
func genLemniscate(w *pointWriter, count int, rng *rand.Rand) {
	const a = 15.0
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count) * math.Pi * 2
		st := math.Sin(t)
		denom := 1 + st*st
		x := a * math.Cos(t) / denom
		y := a * st * math.Cos(t) / denom
		z := math.Sin(t*2)*4 + spread(rng, 1)
		w.set(x, y, z)
	}
}

// genCatenary 悬链曲面：悬链线 r = c·cosh(v/c) 绕 Y 轴旋转
// 下标映射为 100 列的 (u, v) 网格，不使用随机数
func genCatenary(w *pointWriter, count int, _ *rand.Rand) {
	const (
		c       = 2.0
		columns = 100
	)
	rows := float64(count) / columns
	for i := 0; i < count; i++ {
		u := float64(i%columns) / columns * math.Pi * 2
		v := math.Floor(float64(i/columns))/rows*6 - 3
		r := c * math.Cosh(v/c)
		x := r * math.Cos(u)
		z := r * math.Sin(u)
		y := v * 4
		w.set(x, y, z)
	}
}

// kochCorners 正四面体的四个顶点
var kochCorners = [4][3]float64{
	{10, 10, 10},
	{-10, -10, 10},
	{-10, 10, -10},
	{10, -10, -10},
}

const (
	kochIterations = 15
	kochScale      = 1.5
)

// genKoch 用混沌游戏生成四面体分形点云
//
// 名为 Koch，实际是 Sierpinski 四面体式的随机点云：每个粒子独立从原点出发，
// 迭代 kochIterations 次向随机选中的顶点移动一半距离，最后整体放大 kochScale。
func genKoch(w *pointWriter, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		var x, y, z float64
		for s := 0; s < kochIterations; s++ {
			corner := kochCorners[rng.Intn(len(kochCorners))]
			x = (x + corner[0]) / 2
			y = (y + corner[1]) / 2
			z = (z + corner[2]) / 2
		}
		w.set(x*kochScale, y*kochScale, z*kochScale)
	}
}
