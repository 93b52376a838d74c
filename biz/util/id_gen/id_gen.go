package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"goalkeeper/api/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var defaultGen = NewGenerator(10)

// NewID draws a log id from the default generator.
func NewID() string {
	return defaultGen.NewID()
}

// Generator produces log ids from a background-filled pool so request paths
// never wait on entropy.
type Generator struct {
	pool <-chan string
	stop chan struct{}
}

func NewGenerator(poolSize int) *Generator {
	stop := make(chan struct{})
	return &Generator{
		pool: fillPool(poolSize, stop),
		stop: stop,
	}
}

func (g *Generator) NewID() string {
	return <-g.pool
}

func (g *Generator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func fillPool(size int, stop <-chan struct{}) <-chan string {
	pool := make(chan string, size)

	go func() {
		hostPart := ip.IPv4Hex() + strconv.Itoa(os.Getpid())
		for {
			select {
			case <-stop:
				return
			default:
			}

			var sb strings.Builder
			sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
			sb.WriteString(hostPart)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
			pool <- sb.String()
		}
	}()

	return pool
}
