package rx

import "errors"

// ErrNilProducer is the panic value used when an Observable is constructed
// without a producer.
var ErrNilProducer = errors.New("rx: nil producer")
