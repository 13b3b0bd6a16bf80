package ciphers

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// BlockSize represents the AES block size in bytes
const BlockSize = 16

// AESKeySize128 represents an AES-128 key size in bytes
const AESKeySize128 = 16

// AESKeySize192 represents an AES-192 key size in bytes
const AESKeySize192 = 24

// AESKeySize256 represents an AES-256 key size in bytes
const AESKeySize256 = 32
