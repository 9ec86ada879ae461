package chains

import (
	"sync"

	"github.com/WalletMesh/txengine-lib/chains/evm"
	"github.com/WalletMesh/txengine-lib/chains/proof"
	"github.com/WalletMesh/txengine-lib/chains/solana"
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// CodecFactory defines the interface for chain codec lookup. Each chain
// family contributes one codec covering validation, call formatting,
// method names, and receipt normalization; adding a chain family is one
// new registration, not a new switch arm in every component.
type CodecFactory interface {
	// RegisterCodec registers a codec for its chain family, replacing any
	// previously registered codec for the same family.
	//
	// Parameters:
	// - codec: the codec to register.
	RegisterCodec(codec commontypes.Codec)

	// CodecFor retrieves the codec for a chain family.
	//
	// Parameters:
	// - chainType: the chain family to look up.
	//
	// Returns:
	// - commontypes.Codec: the registered codec.
	// - error: a configuration error if the chain family is unrecognized.
	CodecFor(chainType commontypes.ChainType) (commontypes.Codec, error)
}

type codecFactory struct {
	// codecs stores the mapping of chain families to their codecs.
	codecs map[commontypes.ChainType]commontypes.Codec
	// codecsMutex protects access to the codecs map.
	codecsMutex sync.RWMutex
}

// NewCodecFactory creates a new codec factory with the default codecs for
// the EVM, account-model, and proof-chain families registered.
//
// Returns:
// - CodecFactory: the new codec factory instance.
func NewCodecFactory() CodecFactory {
	factory := &codecFactory{
		codecs: make(map[commontypes.ChainType]commontypes.Codec),
	}

	// Initialize with default codecs.
	factory.RegisterCodec(evm.NewCodec())
	factory.RegisterCodec(solana.NewCodec())
	factory.RegisterCodec(proof.NewCodec())

	return factory
}

// RegisterCodec registers a codec for its chain family.
//
// Parameters:
// - codec: the codec to register.
func (f *codecFactory) RegisterCodec(codec commontypes.Codec) {
	f.codecsMutex.Lock()
	defer f.codecsMutex.Unlock()

	f.codecs[codec.ChainType()] = codec
}

// CodecFor retrieves the codec for a chain family.
//
// Parameters:
// - chainType: the chain family to look up.
//
// Returns:
// - commontypes.Codec: the registered codec.
// - error: a configuration error if the chain family is unrecognized.
func (f *codecFactory) CodecFor(chainType commontypes.ChainType) (commontypes.Codec, error) {
	f.codecsMutex.RLock()
	codec, exists := f.codecs[chainType]
	f.codecsMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(commonerrors.ErrCodecNotFound, "chain type %s", chainType)
	}

	return codec, nil
}
