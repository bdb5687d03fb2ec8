package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/vecembed/vector"
	sqlite "modernc.org/sqlite"
)

type scalarFunc func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error)

// functions lists the SQL functions installed by RegisterVectorFunctions.
var functions = []struct {
	Name  string
	NArgs int32
	Impl  scalarFunc
}{
	{"vec_from_json", 1, vecFromJSONImpl},
	{"vec_to_json", 1, vecToJSONImpl},
	{"vec_dim", 1, vecDimImpl},
	{"vec_cosine", 2, vecCosineImpl},
	{"vec_l2", 2, vecL2Impl},
	{"vec_magnitude", 1, vecMagnitudeImpl},
	{"vec_normalize", 1, vecNormalizeImpl},
	{"vec_max_dim", 0, vecMaxDimImpl},
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers the vec_* functions with the driver so
// they are available on connections opened after this call. Repeated calls
// return the outcome of the first one.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions() error {
	registerOnce.Do(func() {
		for _, fn := range functions {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.Name, fn.NArgs, fn.Impl); err != nil {
				registerErr = fmt.Errorf("engine: register %s: %w", fn.Name, err)
				return
			}
		}
	})
	return registerErr
}

// asEmbedding decodes a BLOB argument. A NULL argument yields nil.
func asEmbedding(name string, arg driver.Value) (*vector.Embedding, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		e, err := vector.DecodeEmbedding(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for embedding; want BLOB", name, arg)
	}
}

func asEmbeddingPair(name string, args []driver.Value) (*vector.Embedding, *vector.Embedding, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
	}
	a, err := asEmbedding(name, args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asEmbedding(name, args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func asSingleEmbedding(name string, args []driver.Value) (*vector.Embedding, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
	}
	return asEmbedding(name, args[0])
}

func vecFromJSONImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_from_json: expected 1 argument, got %d", len(args))
	}
	var data []byte
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return nil, fmt.Errorf("vec_from_json: unsupported argument type %T; want TEXT", args[0])
	}
	e, err := vector.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("vec_from_json: %w", err)
	}
	return vector.EncodeEmbedding(e), nil
}

func vecToJSONImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	e, err := asSingleEmbedding("vec_to_json", args)
	if err != nil || e == nil {
		return nil, err
	}
	data, err := e.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("vec_to_json: %w", err)
	}
	return string(data), nil
}

func vecDimImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	e, err := asSingleEmbedding("vec_dim", args)
	if err != nil || e == nil {
		return nil, err
	}
	return int64(e.Dimension()), nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := asEmbeddingPair("vec_cosine", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	sim, err := a.CosineSimilarity(b)
	if err != nil {
		return nil, fmt.Errorf("vec_cosine: %w", err)
	}
	return sim, nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := asEmbeddingPair("vec_l2", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	d, err := a.L2Distance(b)
	if err != nil {
		return nil, fmt.Errorf("vec_l2: %w", err)
	}
	return d, nil
}

func vecMagnitudeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	e, err := asSingleEmbedding("vec_magnitude", args)
	if err != nil || e == nil {
		return nil, err
	}
	return e.Magnitude(), nil
}

func vecNormalizeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	e, err := asSingleEmbedding("vec_normalize", args)
	if err != nil || e == nil {
		return nil, err
	}
	if _, err := e.Normalize(); err != nil {
		return nil, fmt.Errorf("vec_normalize: %w", err)
	}
	return vector.EncodeEmbedding(e), nil
}

func vecMaxDimImpl(_ *sqlite.FunctionContext, _ []driver.Value) (driver.Value, error) {
	return int64(vector.MaxDimension), nil
}
