package wgputil

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// SpirVMagic is the magic number at the start of every SPIR-V module,
// stored in the first word of the binary.
const SpirVMagic uint32 = 0x07230203

// spirvWordSize is the size in bytes of one SPIR-V word.
const spirvWordSize = 4

// spirvHeaderWords is the length of the SPIR-V module header in words:
// magic, version, generator, bound, schema.
const spirvHeaderWords = 5

// Validation errors returned by [MakeSpirV]. Both are deterministic
// functions of the input: retrying cannot fix a malformed binary, so they
// must surface to the caller at construction time.
var (
	// ErrMisalignedData reports SPIR-V input whose byte length is not a
	// multiple of the 4-byte word size. The input is never padded or
	// truncated to fit.
	ErrMisalignedData = errors.New("wgputil: SPIR-V data length is not a multiple of the word size")

	// ErrInvalidMagicNumber reports SPIR-V input whose first word is not
	// the SPIR-V magic number.
	ErrInvalidMagicNumber = errors.New("wgputil: SPIR-V data does not start with the magic number")
)

// ShaderSource holds shader code for module creation. Exactly one field is
// populated; which one decides how the consumer treats the source.
type ShaderSource struct {
	// SPIRV contains SPIR-V bytecode as 32-bit words.
	SPIRV []uint32

	// WGSL contains WGSL source text.
	WGSL string
}

// IsSPIRV reports whether the source holds SPIR-V bytecode.
func (s ShaderSource) IsSPIRV() bool {
	return s.SPIRV != nil
}

// ShaderFlags controls how a shader module is checked during creation.
type ShaderFlags uint32

// Shader flags.
const (
	// ShaderFlagsValidation enables validation of the source before it is
	// handed to a device.
	ShaderFlagsValidation ShaderFlags = 1 << iota

	// ShaderFlagsExperimentalTranslation permits translation paths that are
	// not yet complete, such as partially implemented WGSL features.
	ShaderFlagsExperimentalTranslation
)

// ShaderModuleDescriptor describes a shader module to create. Descriptors
// are built once from static data and not mutated afterwards.
type ShaderModuleDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Source is the validated shader source.
	Source ShaderSource

	// Flags controls validation during module creation.
	Flags ShaderFlags
}

// MakeSpirV reinterprets raw bytes as SPIR-V bytecode.
//
// The byte length must be a multiple of the 4-byte word size
// ([ErrMisalignedData] otherwise) and the first word must be the SPIR-V
// magic number [SpirVMagic] ([ErrInvalidMagicNumber] otherwise, including
// for input too short to hold the word). SPIR-V words are little-endian on
// disk and are decoded as such. No validation beyond the header is done
// here; that is the driver's job.
func MakeSpirV(data []byte) (ShaderSource, error) {
	if len(data)%spirvWordSize != 0 {
		return ShaderSource{}, fmt.Errorf("%w: %d bytes", ErrMisalignedData, len(data))
	}
	if len(data) < spirvWordSize {
		return ShaderSource{}, fmt.Errorf("%w: %d bytes is too short for the header", ErrInvalidMagicNumber, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data); magic != SpirVMagic {
		return ShaderSource{}, fmt.Errorf("%w: got 0x%08X, want 0x%08X", ErrInvalidMagicNumber, magic, SpirVMagic)
	}

	words := make([]uint32, len(data)/spirvWordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*spirvWordSize:])
	}
	return ShaderSource{SPIRV: words}, nil
}

// MakeWGSL wraps WGSL source text. The text is taken verbatim; syntax and
// semantics are checked downstream by the compiler or driver.
func MakeWGSL(code string) ShaderSource {
	return ShaderSource{WGSL: code}
}

// NewSpirVModule builds a shader module descriptor from raw SPIR-V bytes,
// validating them via [MakeSpirV]. Validation is enabled on the result.
func NewSpirVModule(label string, data []byte) (*ShaderModuleDescriptor, error) {
	source, err := MakeSpirV(data)
	if err != nil {
		return nil, err
	}
	return &ShaderModuleDescriptor{
		Label:  label,
		Source: source,
		Flags:  ShaderFlagsValidation,
	}, nil
}

// NewWGSLModule builds a shader module descriptor from WGSL source text.
// Validation is enabled on the result.
func NewWGSLModule(label, code string) *ShaderModuleDescriptor {
	return &ShaderModuleDescriptor{
		Label:  label,
		Source: MakeWGSL(code),
		Flags:  ShaderFlagsValidation,
	}
}

// SpirVHeader holds the fields of a SPIR-V module header, after the magic
// number.
type SpirVHeader struct {
	// Major and Minor are the SPIR-V version of the module.
	Major uint8
	Minor uint8

	// Generator is the tool that produced the module, as a registered
	// generator magic value.
	Generator uint32

	// Bound is the upper bound on all result IDs in the module.
	Bound uint32

	// Schema is the instruction schema (0 for current SPIR-V versions).
	Schema uint32
}

// SpirVHeader parses the module header of a SPIR-V source. It fails if the
// source is not SPIR-V or holds fewer than the five header words.
func (s ShaderSource) SpirVHeader() (SpirVHeader, error) {
	if !s.IsSPIRV() {
		return SpirVHeader{}, errors.New("wgputil: source is not SPIR-V")
	}
	if len(s.SPIRV) < spirvHeaderWords {
		return SpirVHeader{}, fmt.Errorf("wgputil: SPIR-V module has %d words, header needs %d", len(s.SPIRV), spirvHeaderWords)
	}
	version := s.SPIRV[1]
	return SpirVHeader{
		Major:     uint8(version >> 16),
		Minor:     uint8(version >> 8),
		Generator: s.SPIRV[2],
		Bound:     s.SPIRV[3],
		Schema:    s.SPIRV[4],
	}, nil
}
