package dataview

// GetUint8 reads one byte and advances by 1.
func (c *Cursor) GetUint8() (uint8, error) {
	p, err := c.take("GetUint8", sizeUint8)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// GetInt8 reads one byte as a two's complement int8 and advances by 1.
func (c *Cursor) GetInt8() (int8, error) {
	p, err := c.take("GetInt8", sizeUint8)
	if err != nil {
		return 0, err
	}
	return int8(p[0]), nil
}

// GetUint16 reads a big-endian uint16 and advances by 2.
func (c *Cursor) GetUint16() (uint16, error) {
	p, err := c.take("GetUint16", sizeUint16)
	if err != nil {
		return 0, err
	}
	return WireOrder.Uint16(p), nil
}

// GetInt16 reads a big-endian int16 and advances by 2.
func (c *Cursor) GetInt16() (int16, error) {
	p, err := c.take("GetInt16", sizeUint16)
	if err != nil {
		return 0, err
	}
	return int16(WireOrder.Uint16(p)), nil
}

// GetUint32 reads a big-endian uint32 and advances by 4.
func (c *Cursor) GetUint32() (uint32, error) {
	p, err := c.take("GetUint32", sizeUint32)
	if err != nil {
		return 0, err
	}
	return WireOrder.Uint32(p), nil
}

// GetInt32 reads a big-endian int32 and advances by 4.
func (c *Cursor) GetInt32() (int32, error) {
	p, err := c.take("GetInt32", sizeUint32)
	if err != nil {
		return 0, err
	}
	return int32(WireOrder.Uint32(p)), nil
}

// GetUint64 reads a big-endian uint64 and advances by 8.
func (c *Cursor) GetUint64() (uint64, error) {
	p, err := c.take("GetUint64", sizeUint64)
	if err != nil {
		return 0, err
	}
	return WireOrder.Uint64(p), nil
}

// GetInt64 reads a big-endian int64 and advances by 8.
func (c *Cursor) GetInt64() (int64, error) {
	p, err := c.take("GetInt64", sizeUint64)
	if err != nil {
		return 0, err
	}
	return int64(WireOrder.Uint64(p)), nil
}

// GetFloat32 reads 4 bytes as the bit pattern of an IEEE-754 float32.
func (c *Cursor) GetFloat32() (float32, error) {
	p, err := c.take("GetFloat32", sizeFloat32)
	if err != nil {
		return 0, err
	}
	return float32FromWire(p), nil
}

// GetFloat64 reads 8 bytes as the bit pattern of an IEEE-754 float64.
func (c *Cursor) GetFloat64() (float64, error) {
	p, err := c.take("GetFloat64", sizeFloat64)
	if err != nil {
		return 0, err
	}
	return float64FromWire(p), nil
}
