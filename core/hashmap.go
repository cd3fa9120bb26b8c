package core

import (
	. "github.com/Riyyi/mal/types"
)

// hash-map, assoc, dissoc, get, contains?, keys, vals: all implemented
// via types.EncodeMapKey/DecodeMapKey so no other file needs to know
// about the keyword/string key-collision sentinel.

func hashMap(args []*Value) *Value {
	if len(args)%2 != 0 {
		return ThrowError("hash-map expects an even number of arguments")
	}
	hm := NewHashMap()
	for i := 0; i < len(args); i += 2 {
		key, errVal := EncodeMapKey(args[i])
		if errVal != nil {
			return nil
		}
		hm.Data[key] = args[i+1]
	}
	return &Value{HashMap: hm}
}

func mapQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].HashMap != nil)
}

// assoc returns a new HashMap with the given key/value pairs merged in,
// leaving the original untouched (hash-maps are logically immutable).
func assoc(args []*Value) *Value {
	if len(args) < 1 || args[0].HashMap == nil {
		return ThrowError("assoc: first argument must be a hash-map")
	}
	rest := args[1:]
	if len(rest)%2 != 0 {
		return ThrowError("assoc expects an even number of key/value arguments")
	}

	out := NewHashMap()
	for k, v := range args[0].HashMap.Data {
		out.Data[k] = v
	}
	for i := 0; i < len(rest); i += 2 {
		key, errVal := EncodeMapKey(rest[i])
		if errVal != nil {
			return nil
		}
		out.Data[key] = rest[i+1]
	}
	return &Value{HashMap: out}
}

func dissoc(args []*Value) *Value {
	if len(args) < 1 || args[0].HashMap == nil {
		return ThrowError("dissoc: first argument must be a hash-map")
	}
	out := NewHashMap()
	for k, v := range args[0].HashMap.Data {
		out.Data[k] = v
	}
	for _, k := range args[1:] {
		key, errVal := EncodeMapKey(k)
		if errVal != nil {
			return nil
		}
		delete(out.Data, key)
	}
	return &Value{HashMap: out}
}

func get(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("get expects a hash-map and a key")
	}
	if args[0] == Nil {
		return Nil
	}
	if args[0].HashMap == nil {
		return ThrowError("get: first argument must be a hash-map or nil")
	}
	key, errVal := EncodeMapKey(args[1])
	if errVal != nil {
		return nil
	}
	if v, ok := args[0].HashMap.Data[key]; ok {
		return v
	}
	return Nil
}

func containsQ(args []*Value) *Value {
	if len(args) != 2 || args[0].HashMap == nil {
		return ThrowError("contains?: expects a hash-map and a key")
	}
	key, errVal := EncodeMapKey(args[1])
	if errVal != nil {
		return nil
	}
	_, ok := args[0].HashMap.Data[key]
	return NewBool(ok)
}

func keys(args []*Value) *Value {
	if len(args) != 1 || args[0].HashMap == nil {
		return ThrowError("keys expects a hash-map")
	}
	out := make([]*Value, 0, len(args[0].HashMap.Data))
	for k := range args[0].HashMap.Data {
		out = append(out, DecodeMapKey(k))
	}
	return NewListFromSlice(out)
}

func vals(args []*Value) *Value {
	if len(args) != 1 || args[0].HashMap == nil {
		return ThrowError("vals expects a hash-map")
	}
	out := make([]*Value, 0, len(args[0].HashMap.Data))
	for _, v := range args[0].HashMap.Data {
		out = append(out, v)
	}
	return NewListFromSlice(out)
}
