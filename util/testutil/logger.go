package testutil

import (
	"github.com/rhonix/rboot/global"
	"github.com/rhonix/rboot/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const testTimeLayout = "04:05.00000"

// NewNamedLogger is the stderr logger of tests, info level by default
func NewNamedLogger(name string, logLevel ...zapcore.Level) *zap.SugaredLogger {
	lvl := zap.InfoLevel
	if len(logLevel) > 0 {
		lvl = logLevel[0]
	}
	log, err := global.NewLogger(name, lvl, []string{"stderr"}, testTimeLayout)
	util.AssertNoError(err)
	return log
}
