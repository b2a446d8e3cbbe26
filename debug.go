//go:build debug

package sing

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/sagernet/sing-wireless/common/log"
)

func init() {
	go func() {
		err := http.ListenAndServe("127.0.0.1:8964", nil)
		if err != nil {
			log.NewLogger("debug").Error("pprof: ", err)
		}
	}()
}
