package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
)

// TeleportFlags - bit field for teleportation
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Flags
type TeleportFlags uint32

func (f TeleportFlags) ToBytes() (ByteArray, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(f))
	return data, nil
}

func (f *TeleportFlags) FromBytes(data ByteArray) (int, error) {
	if len(data) < 4 {
		return 0, errors.New("insufficient data for TeleportFlags")
	}
	*f = TeleportFlags(binary.BigEndian.Uint32(data))
	return 4, nil
}

// Optional - wrapper for optional fields whose presence is implied by
// context rather than an explicit boolean prefix (see PrefixedOptional).
type Optional[T any] struct {
	Present bool
	Value   T
}

func (o Optional[T]) ToBytes() (ByteArray, error) {
	if !o.Present {
		return ByteArray{}, nil
	}

	if marshaler, ok := any(o.Value).(interface{ ToBytes() (ByteArray, error) }); ok {
		return marshaler.ToBytes()
	}
	return nil, fmt.Errorf("type %T does not implement ToBytes method", o.Value)
}

func (o *Optional[T]) FromBytes(data ByteArray) (int, error) {
	// For Optional, presence must be known from context
	// This implementation assumes the field is present if called
	o.Present = true

	if unmarshaler, ok := any(&o.Value).(interface{ FromBytes(ByteArray) (int, error) }); ok {
		return unmarshaler.FromBytes(data)
	}
	return 0, fmt.Errorf("type %T does not implement FromBytes method", o.Value)
}

// PrefixedOptional - optional field prefixed with a boolean presence flag
type PrefixedOptional[T any] struct {
	Present bool
	Value   T
}

func (p PrefixedOptional[T]) ToBytes() (ByteArray, error) {
	result, err := Boolean(p.Present).ToBytes()
	if err != nil {
		return nil, err
	}

	if !p.Present {
		return result, nil
	}

	if marshaler, ok := any(p.Value).(interface{ ToBytes() (ByteArray, error) }); ok {
		valueBytes, err := marshaler.ToBytes()
		if err != nil {
			return nil, err
		}
		result = append(result, valueBytes...)
		return result, nil
	}

	val := reflect.ValueOf(p.Value)
	if val.Kind() == reflect.Array {
		for i := range val.Len() {
			elem := val.Index(i).Interface()
			if marshaler, ok := elem.(interface{ ToBytes() (ByteArray, error) }); ok {
				elemBytes, err := marshaler.ToBytes()
				if err != nil {
					return nil, fmt.Errorf("error marshaling array element %d: %w", i, err)
				}
				result = append(result, elemBytes...)
			} else {
				return nil, fmt.Errorf("array element type %T does not implement ToBytes method", elem)
			}
		}
		return result, nil
	}

	return nil, fmt.Errorf("type %T does not implement ToBytes method", p.Value)
}

func (p *PrefixedOptional[T]) FromBytes(data ByteArray) (int, error) {
	var present Boolean
	bytesRead, err := present.FromBytes(data)
	if err != nil {
		return 0, err
	}

	p.Present = bool(present)
	if !p.Present {
		return bytesRead, nil
	}

	if unmarshaler, ok := any(&p.Value).(interface{ FromBytes(ByteArray) (int, error) }); ok {
		valueBytes, err := unmarshaler.FromBytes(data[bytesRead:])
		if err != nil {
			return 0, err
		}
		return bytesRead + valueBytes, nil
	}

	val := reflect.ValueOf(&p.Value).Elem()
	if val.Kind() == reflect.Array {
		totalRead := bytesRead
		for i := 0; i < val.Len(); i++ {
			elem := val.Index(i)
			if elem.CanAddr() {
				elemPtr := elem.Addr().Interface()
				if unmarshaler, ok := elemPtr.(interface{ FromBytes(ByteArray) (int, error) }); ok {
					read, err := unmarshaler.FromBytes(data[totalRead:])
					if err != nil {
						return 0, fmt.Errorf("error unmarshaling array element %d: %w", i, err)
					}
					totalRead += read
				} else {
					return 0, fmt.Errorf("array element type %T does not implement FromBytes method", elem.Interface())
				}
			} else {
				return 0, fmt.Errorf("cannot take address of array element %d", i)
			}
		}
		return totalRead, nil
	}

	return 0, fmt.Errorf("type %T does not implement FromBytes method", p.Value)
}

// Array - fixed-size array wrapper, length supplied by the caller from a
// sibling field rather than self-describing.
type Array[T any] []T

func (a Array[T]) ToBytes() (ByteArray, error) {
	var result ByteArray

	if _, isByte := any(a).(Array[Byte]); isByte {
		bytes := make([]byte, len(a))
		for i := range a {
			if b, ok := any(a[i]).(Byte); ok {
				bytes[i] = byte(b)
			}
		}
		return ByteArray(bytes), nil
	}

	for i, item := range a {
		if marshaler, ok := any(item).(interface{ ToBytes() (ByteArray, error) }); ok {
			itemBytes, err := marshaler.ToBytes()
			if err != nil {
				return nil, fmt.Errorf("error marshaling array item %d: %w", i, err)
			}
			result = append(result, itemBytes...)
		} else {
			return nil, fmt.Errorf("type %T does not implement ToBytes method", item)
		}
	}
	return result, nil
}

func (a *Array[T]) FromBytes(data ByteArray, length int) (int, error) {
	*a = make(Array[T], length)
	for i := range length {
		if b, ok := any(Byte(data[i])).(T); ok {
			(*a)[i] = b
		}
	}
	return length, nil
}

// PrefixedArray - length-prefixed array (VarInt element count, then elements)
type PrefixedArray[T any] []T

func (p PrefixedArray[T]) ToBytes() (ByteArray, error) {
	length := VarInt(len(p))
	result, err := length.ToBytes()
	if err != nil {
		return nil, err
	}

	if _, isByte := any(p).(PrefixedArray[Byte]); isByte {
		bytes := make([]byte, len(p))
		for i := range p {
			if b, ok := any(p[i]).(Byte); ok {
				bytes[i] = byte(b)
			}
		}
		result = append(result, bytes...)
		return result, nil
	}

	for i, item := range p {
		if marshaler, ok := any(item).(interface{ ToBytes() (ByteArray, error) }); ok {
			itemBytes, err := marshaler.ToBytes()
			if err != nil {
				return nil, fmt.Errorf("error marshaling array item %d: %w", i, err)
			}
			result = append(result, itemBytes...)
		} else {
			return nil, fmt.Errorf("type %T does not implement ToBytes method", item)
		}
	}
	return result, nil
}

func (p *PrefixedArray[T]) FromBytes(data ByteArray) (int, error) {
	var length VarInt
	bytesRead, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}

	if length < 0 {
		return 0, errors.New("negative array length")
	}

	if _, isByte := any(*p).(PrefixedArray[Byte]); isByte {
		if len(data) < bytesRead+int(length) {
			return 0, errors.New("insufficient data for byte array")
		}
		*p = make(PrefixedArray[T], length)
		for i := 0; i < int(length); i++ {
			if b, ok := any(Byte(data[bytesRead+i])).(T); ok {
				(*p)[i] = b
			}
		}
		return bytesRead + int(length), nil
	}

	*p = make(PrefixedArray[T], length)
	offset := bytesRead

	for i := 0; i < int(length); i++ {
		if unmarshaler, ok := any(&(*p)[i]).(interface{ FromBytes(ByteArray) (int, error) }); ok {
			itemBytes, err := unmarshaler.FromBytes(data[offset:])
			if err != nil {
				return 0, fmt.Errorf("error unmarshaling array item %d: %w", i, err)
			}
			offset += itemBytes
		} else {
			return 0, fmt.Errorf("type %T does not implement FromBytes method", (*p)[i])
		}
	}

	return offset, nil
}
