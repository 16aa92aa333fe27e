package dataview

// SetUint8 writes one byte and advances by 1.
func (c *Cursor) SetUint8(v uint8) error {
	p, err := c.take("SetUint8", sizeUint8)
	if err != nil {
		return err
	}
	p[0] = v
	return nil
}

// SetInt8 writes v as one two's complement byte and advances by 1.
func (c *Cursor) SetInt8(v int8) error {
	p, err := c.take("SetInt8", sizeUint8)
	if err != nil {
		return err
	}
	p[0] = uint8(v)
	return nil
}

// SetUint16 writes a big-endian uint16 and advances by 2.
func (c *Cursor) SetUint16(v uint16) error {
	p, err := c.take("SetUint16", sizeUint16)
	if err != nil {
		return err
	}
	WireOrder.PutUint16(p, v)
	return nil
}

// SetInt16 writes a big-endian int16 and advances by 2.
func (c *Cursor) SetInt16(v int16) error {
	p, err := c.take("SetInt16", sizeUint16)
	if err != nil {
		return err
	}
	WireOrder.PutUint16(p, uint16(v))
	return nil
}

// SetUint32 writes a big-endian uint32 and advances by 4.
func (c *Cursor) SetUint32(v uint32) error {
	p, err := c.take("SetUint32", sizeUint32)
	if err != nil {
		return err
	}
	WireOrder.PutUint32(p, v)
	return nil
}

// SetInt32 writes a big-endian int32 and advances by 4.
func (c *Cursor) SetInt32(v int32) error {
	p, err := c.take("SetInt32", sizeUint32)
	if err != nil {
		return err
	}
	WireOrder.PutUint32(p, uint32(v))
	return nil
}

// SetUint64 writes a big-endian uint64 and advances by 8.
func (c *Cursor) SetUint64(v uint64) error {
	p, err := c.take("SetUint64", sizeUint64)
	if err != nil {
		return err
	}
	WireOrder.PutUint64(p, v)
	return nil
}

// SetInt64 writes a big-endian int64 and advances by 8.
func (c *Cursor) SetInt64(v int64) error {
	p, err := c.take("SetInt64", sizeUint64)
	if err != nil {
		return err
	}
	WireOrder.PutUint64(p, uint64(v))
	return nil
}

// SetFloat32 writes the IEEE-754 bit pattern of v and advances by 4.
func (c *Cursor) SetFloat32(v float32) error {
	p, err := c.take("SetFloat32", sizeFloat32)
	if err != nil {
		return err
	}
	float32ToWire(p, v)
	return nil
}

// SetFloat64 writes the IEEE-754 bit pattern of v and advances by 8.
func (c *Cursor) SetFloat64(v float64) error {
	p, err := c.take("SetFloat64", sizeFloat64)
	if err != nil {
		return err
	}
	float64ToWire(p, v)
	return nil
}
