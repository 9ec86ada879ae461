package chains

import (
	"testing"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCodecsRegistered(t *testing.T) {
	factory := NewCodecFactory()

	for _, chainType := range []commontypes.ChainType{
		commontypes.EVM, commontypes.SOLANA, commontypes.PROOF,
	} {
		codec, err := factory.CodecFor(chainType)
		require.NoError(t, err)
		assert.Equal(t, chainType, codec.ChainType())
		assert.NotEmpty(t, codec.Methods().Send)
		assert.NotEmpty(t, codec.Methods().Receipt)
	}
}

func TestUnrecognizedChainTypeIsConfigurationError(t *testing.T) {
	factory := NewCodecFactory()

	_, err := factory.CodecFor(commontypes.UNKNOWN)
	assert.True(t, errors.Is(err, commonerrors.ErrCodecNotFound))

	_, err = factory.CodecFor(commontypes.ChainType("COSMOS"))
	assert.True(t, errors.Is(err, commonerrors.ErrCodecNotFound))
}
