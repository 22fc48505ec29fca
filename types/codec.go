package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// VaultRecordValue is the collections codec used to persist VaultRecords.
var VaultRecordValue collcodec.ValueCodec[VaultRecord] = vaultRecordValueCodec{}

type vaultRecordValueCodec struct{}

func (vaultRecordValueCodec) Encode(value VaultRecord) ([]byte, error) {
	return json.Marshal(value)
}

func (vaultRecordValueCodec) Decode(b []byte) (VaultRecord, error) {
	var v VaultRecord
	if err := json.Unmarshal(b, &v); err != nil {
		return VaultRecord{}, fmt.Errorf("failed to decode vault record: %w", err)
	}
	return v, nil
}

func (c vaultRecordValueCodec) EncodeJSON(value VaultRecord) ([]byte, error) {
	return c.Encode(value)
}

func (c vaultRecordValueCodec) DecodeJSON(b []byte) (VaultRecord, error) {
	return c.Decode(b)
}

func (vaultRecordValueCodec) Stringify(value VaultRecord) string {
	return fmt.Sprintf("vault %d: %d %s backing %d %s (fee %d bps)",
		value.ID, value.Assets, value.AssetsDenom, value.Shares, value.SharesDenom, value.FeeBps)
}

func (vaultRecordValueCodec) ValueType() string {
	return "tokenvault/VaultRecord"
}
