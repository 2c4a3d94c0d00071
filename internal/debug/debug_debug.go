//go:build debug

package debug

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("streamtokens.debug")

func Printf(msg string, args ...any) {
	log.Noticef(msg, args...)
}

const On = true
