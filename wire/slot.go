package wire

// Slot - an item stack in an inventory or container, pre-1.13 wire shape:
// a present flag, then (when present) item id, count and an NBT tag.
// 1.13+ replaced this with a hashed/component-based encoding not used by
// protocols 316/340.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:Slot
type Slot struct {
	Present bool
	ItemID  VarInt
	Count   Byte
	Tag     NBT
}

func (s Slot) ToBytes() (ByteArray, error) {
	presentBytes, err := Boolean(s.Present).ToBytes()
	if err != nil {
		return nil, err
	}
	if !s.Present {
		return presentBytes, nil
	}

	idBytes, err := s.ItemID.ToBytes()
	if err != nil {
		return nil, err
	}
	result := append(presentBytes, idBytes...)

	countBytes, err := s.Count.ToBytes()
	if err != nil {
		return nil, err
	}
	result = append(result, countBytes...)

	tagBytes, err := s.Tag.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(result, tagBytes...), nil
}

func (s *Slot) FromBytes(data ByteArray) (int, error) {
	var present Boolean
	bytesRead, err := present.FromBytes(data)
	if err != nil {
		return 0, err
	}
	s.Present = bool(present)
	if !s.Present {
		s.ItemID = 0
		s.Count = 0
		s.Tag = NBT{}
		return bytesRead, nil
	}

	idRead, err := s.ItemID.FromBytes(data[bytesRead:])
	if err != nil {
		return 0, err
	}
	bytesRead += idRead

	countRead, err := s.Count.FromBytes(data[bytesRead:])
	if err != nil {
		return 0, err
	}
	bytesRead += countRead

	tagRead, err := s.Tag.FromBytes(data[bytesRead:])
	if err != nil {
		return 0, err
	}
	bytesRead += tagRead

	return bytesRead, nil
}
