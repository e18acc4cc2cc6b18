// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// claim registry errors - these are the only errors a registry
// operation returns for a failed precondition
var (
	AddressAlreadyClaimed = ExistsError("address already claimed")
	InvalidLock           = InvalidError("invalid lock")
	NoSuchAddress         = NotFoundError("no such address")
	NoSuchProof           = NotFoundError("no such proof")
	NotProofOwner         = InvalidError("not proof owner")
	ProofAlreadyClaimed   = ExistsError("proof already claimed")
	ProofAlreadyLocked    = ExistsError("proof already locked")
	ProofNotClaimed       = NotFoundError("proof not claimed")
	ProofNotLocked        = NotFoundError("proof not locked")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	DatabaseIsNewer              = InvalidError("database version is newer than program")
	DuplicateRegistry            = ExistsError("duplicate registry name")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidNonce                 = InvalidError("invalid nonce")
	InvalidPasswordLength        = InvalidError("password must be at least 8 characters")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidRegistryName          = InvalidError("invalid registry name")
	InvalidSalt                  = InvalidError("invalid salt")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingAddress               = LengthError("address is empty")
	MissingConnection            = InvalidError("missing connection")
	MissingDescription           = InvalidError("missing description")
	MissingIdentityName          = InvalidError("missing identity name")
	MissingOwner                 = InvalidError("owner is required")
	MissingParameters            = InvalidError("missing parameters")
	MissingProof                 = LengthError("proof is empty")
	NoRegistries                 = NotFoundError("no registries configured")
	NoSuchRegistry               = NotFoundError("no such registry")
	NotAvailableDuringStartup    = InvalidError("not available during startup")
	NotAvailableInReadOnlyMode   = InvalidError("not available in read-only mode")
	NotAvailableWhileStopping    = InvalidError("not available while stopping")
	NotInitialised               = NotFoundError("not initialised")
	NotPrivateKey                = InvalidError("identity has no private key")
	NotPublicKey                 = InvalidError("not a public key")
	PasswordMismatch             = InvalidError("passwords do not match")
	ProofTooLong                 = LengthError("proof too long")
	RateLimiting                 = InvalidError("rate limiting")
	TransactionInUse             = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	TruncatedRecord              = RecordError("truncated record")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
