// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the subset of OpenGL used by glw: handle types,
// enums and the Functions interface implemented by glcore (a real
// context) and glfake (an in-memory stand-in for tests).
package gl

const (
	ACTIVE_TEXTURE                 = 0x84e0
	ACTIVE_UNIFORMS                = 0x8b86
	ACTIVE_UNIFORM_MAX_LENGTH      = 0x8b87
	BOOL                           = 0x8b56
	BYTE                           = 0x1400
	CLAMP_TO_BORDER                = 0x812d
	CLAMP_TO_EDGE                  = 0x812f
	COLOR_BUFFER_BIT               = 0x4000
	COMPILE_STATUS                 = 0x8b81
	CURRENT_PROGRAM                = 0x8b8d
	DEPTH_COMPONENT                = 0x1902
	DEPTH_COMPONENT16              = 0x81a5
	DEPTH_COMPONENT24              = 0x81a6
	DEPTH_COMPONENT32              = 0x81a7
	DEPTH_COMPONENT32F             = 0x8cac
	DEPTH_STENCIL                  = 0x84f9
	DEPTH24_STENCIL8               = 0x88f0
	DEPTH32F_STENCIL8              = 0x8cad
	EXTENSIONS                     = 0x1f03
	FALSE                          = 0
	FLOAT                          = 0x1406
	FLOAT_32_UNSIGNED_INT_24_8_REV = 0x8dad
	FLOAT_MAT3                     = 0x8b5b
	FLOAT_MAT4                     = 0x8b5c
	FLOAT_VEC2                     = 0x8b50
	FLOAT_VEC3                     = 0x8b51
	FLOAT_VEC4                     = 0x8b52
	FRAGMENT_SHADER                = 0x8b30
	HALF_FLOAT                     = 0x140b
	INFO_LOG_LENGTH                = 0x8b84
	INT                            = 0x1404
	INT_VEC2                       = 0x8b53
	INT_VEC3                       = 0x8b54
	INT_VEC4                       = 0x8b55
	INVALID_ENUM                   = 0x0500
	INVALID_OPERATION              = 0x0502
	INVALID_VALUE                  = 0x0501
	LINEAR                         = 0x2601
	LINEAR_MIPMAP_LINEAR           = 0x2703
	LINEAR_MIPMAP_NEAREST          = 0x2701
	LINK_STATUS                    = 0x8b82
	MAX_TEXTURE_IMAGE_UNITS        = 0x8872
	MIRRORED_REPEAT                = 0x8370
	NEAREST                        = 0x2600
	NEAREST_MIPMAP_LINEAR          = 0x2702
	NEAREST_MIPMAP_NEAREST         = 0x2700
	NO_ERROR                       = 0x0
	NUM_EXTENSIONS                 = 0x821d
	PACK_ALIGNMENT                 = 0x0d05
	PACK_IMAGE_HEIGHT              = 0x806c
	PACK_LSB_FIRST                 = 0x0d01
	PACK_ROW_LENGTH                = 0x0d02
	PACK_SKIP_IMAGES               = 0x806b
	PACK_SKIP_PIXELS               = 0x0d04
	PACK_SKIP_ROWS                 = 0x0d03
	PACK_SWAP_BYTES                = 0x0d00
	R16                            = 0x822a
	R16F                           = 0x822d
	R16I                           = 0x8233
	R16UI                          = 0x8234
	R32F                           = 0x822e
	R32I                           = 0x8235
	R32UI                          = 0x8236
	R8                             = 0x8229
	R8I                            = 0x8231
	R8UI                           = 0x8232
	RED                            = 0x1903
	RED_INTEGER                    = 0x8d94
	RENDERER                       = 0x1f01
	REPEAT                         = 0x2901
	RG                             = 0x8227
	RG16                           = 0x822c
	RG16F                          = 0x822f
	RG16I                          = 0x8239
	RG16UI                         = 0x823a
	RG32F                          = 0x8230
	RG32I                          = 0x823b
	RG32UI                         = 0x823c
	RG8                            = 0x822b
	RG8I                           = 0x8237
	RG8UI                          = 0x8238
	RG_INTEGER                     = 0x8228
	RGB                            = 0x1907
	RGB16F                         = 0x881b
	RGB16I                         = 0x8d89
	RGB16UI                        = 0x8d77
	RGB32F                         = 0x8815
	RGB32I                         = 0x8d83
	RGB32UI                        = 0x8d71
	RGB8                           = 0x8051
	RGB8I                          = 0x8d8f
	RGB8UI                         = 0x8d7d
	RGB_INTEGER                    = 0x8d98
	RGBA                           = 0x1908
	RGBA16F                        = 0x881a
	RGBA16I                        = 0x8d88
	RGBA16UI                       = 0x8d76
	RGBA32F                        = 0x8814
	RGBA32I                        = 0x8d82
	RGBA32UI                       = 0x8d70
	RGBA8                          = 0x8058
	RGBA8I                         = 0x8d8e
	RGBA8UI                        = 0x8d7c
	RGBA_INTEGER                   = 0x8d99
	SAMPLER_1D                     = 0x8b5d
	SAMPLER_2D                     = 0x8b5e
	SAMPLER_3D                     = 0x8b5f
	SAMPLER_CUBE                   = 0x8b60
	SHORT                          = 0x1402
	SRGB8                          = 0x8c41
	SRGB8_ALPHA8                   = 0x8c43
	TEXTURE0                       = 0x84c0
	TEXTURE_1D                     = 0x0de0
	TEXTURE_2D                     = 0x0de1
	TEXTURE_3D                     = 0x806f
	TEXTURE_BASE_LEVEL             = 0x813c
	TEXTURE_BINDING_1D             = 0x8068
	TEXTURE_BINDING_2D             = 0x8069
	TEXTURE_BINDING_3D             = 0x806a
	TEXTURE_CUBE_MAP               = 0x8513
	TEXTURE_DEPTH                  = 0x8071
	TEXTURE_HEIGHT                 = 0x1001
	TEXTURE_INTERNAL_FORMAT        = 0x1003
	TEXTURE_LOD_BIAS               = 0x8501
	TEXTURE_MAG_FILTER             = 0x2800
	TEXTURE_MAX_ANISOTROPY_EXT     = 0x84fe
	TEXTURE_MAX_LEVEL              = 0x813d
	TEXTURE_MAX_LOD                = 0x813b
	TEXTURE_MIN_FILTER             = 0x2801
	TEXTURE_MIN_LOD                = 0x813a
	TEXTURE_WIDTH                  = 0x1000
	TEXTURE_WRAP_R                 = 0x8072
	TEXTURE_WRAP_S                 = 0x2802
	TEXTURE_WRAP_T                 = 0x2803
	TRIANGLES                      = 0x4
	TRUE                           = 1
	UNPACK_ALIGNMENT               = 0x0cf5
	UNPACK_IMAGE_HEIGHT            = 0x806e
	UNPACK_LSB_FIRST               = 0x0cf1
	UNPACK_ROW_LENGTH              = 0x0cf2
	UNPACK_SKIP_IMAGES             = 0x806d
	UNPACK_SKIP_PIXELS             = 0x0cf4
	UNPACK_SKIP_ROWS               = 0x0cf3
	UNPACK_SWAP_BYTES              = 0x0cf0
	UNSIGNED_BYTE                  = 0x1401
	UNSIGNED_INT                   = 0x1405
	UNSIGNED_INT_24_8              = 0x84fa
	UNSIGNED_INT_VEC2              = 0x8dc6
	UNSIGNED_INT_VEC3              = 0x8dc7
	UNSIGNED_INT_VEC4              = 0x8dc8
	UNSIGNED_SHORT                 = 0x1403
	VERSION                        = 0x1f02
	VERTEX_SHADER                  = 0x8b31
)
