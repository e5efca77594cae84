package logger

import (
	"go.uber.org/zap"

	usecasecontract "counselconnect/internal/usecase/contract"
)

// ZapLogger adapts a zap SugaredLogger to the application logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production or development zap logger depending
// on the environment name.
func NewZapLogger(environment string) (usecasecontract.IAppLogger, func(), error) {
	var (
		l   *zap.Logger
		err error
	)
	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = l.Sync() }
	return &ZapLogger{sugar: l.Sugar()}, cleanup, nil
}

func (z *ZapLogger) Debugf(format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}

func (z *ZapLogger) Infof(format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}

func (z *ZapLogger) Fatalf(format string, args ...interface{}) {
	z.sugar.Fatalf(format, args...)
}
