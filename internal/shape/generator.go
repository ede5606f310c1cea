package shape

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultParticleCount 默认粒子数量
const DefaultParticleCount = 30000

// pointWriter 顺序写入 (x, y, z) 三元组
type pointWriter struct {
	buf []float32
	idx int
}

func (w *pointWriter) set(x, y, z float64) {
	w.buf[w.idx*3] = float32(x)
	w.buf[w.idx*3+1] = float32(y)
	w.buf[w.idx*3+2] = float32(z)
	w.idx++
}

// generatorFunc 单个形状的生成函数，必须恰好写入 count 个点
type generatorFunc func(w *pointWriter, count int, rng *rand.Rand)

var generators = map[Type]generatorFunc{
	Vortex:     genVortex,
	Archimedes: genArchimedes,
	Cardioid:   genCardioid,
	Butterfly:  genButterfly,
	Rose:       genRose,
	Lemniscate: genLemniscate,
	Catenary:   genCatenary,
	Koch:       genKoch,
}

var (
	defaultRandMu sync.Mutex
	defaultRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Generate 生成指定形状的粒子坐标
//
// 参数：
//   - t: 形状类型，未知类型返回全零缓冲（退化到原点，不报错）
//   - count: 粒子数量，<= 0 时返回空缓冲
//   - rng: 随机源，为 nil 时使用包级随机源
//
// 返回：
//   - []float32: 长度恰好为 count*3
func Generate(t Type, count int, rng *rand.Rand) []float32 {
	if count <= 0 {
		return []float32{}
	}
	buf := make([]float32, count*3)

	gen, ok := generators[t]
	if !ok {
		// 未知形状：全部落在原点
		return buf
	}

	if rng == nil {
		defaultRandMu.Lock()
		defer defaultRandMu.Unlock()
		rng = defaultRand
	}

	gen(&pointWriter{buf: buf}, count, rng)
	return buf
}

// spread 返回 [-scale/2, scale/2) 内的均匀随机数
func spread(rng *rand.Rand, scale float64) float64 {
	return (rng.Float64() - 0.5) * scale
}
