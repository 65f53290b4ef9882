package dllist

// DefaultLogger логгер используемый когда в опциях он не задан.
var DefaultLogger Logger = stdLogger{}

// Options опции для DLList.
type Options struct {
	// Logger получает ситуации, которые не передаются вызывающему через ошибку.
	// По умолчанию DefaultLogger.
	Logger Logger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}

	return o
}
