// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestDigest_Deterministic(t *testing.T) {
	data := []byte("test-data")

	sum1 := Digest(data)
	sum2 := Digest(data)

	if len(sum1) != blake2b.Size256 {
		t.Fatalf("expected %d-byte digest, got %d", blake2b.Size256, len(sum1))
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("digest must be deterministic for the same input")
	}

	// verify against direct computation
	expected := blake2b.Sum256(data)
	if !bytes.Equal(sum1, expected[:]) {
		t.Fatalf("unexpected digest value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestDigest_DistinguishesInputs(t *testing.T) {
	sum1 := Digest([]byte("upload-one"))
	sum2 := Digest([]byte("upload-two"))

	if bytes.Equal(sum1, sum2) {
		t.Fatal("different inputs produced identical digests")
	}
}

func TestDigestString_HexEncoded(t *testing.T) {
	got := DigestString("file contents")

	raw, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("digest string is not valid hex: %v", err)
	}
	if len(raw) != blake2b.Size256 {
		t.Fatalf("expected %d raw bytes, got %d", blake2b.Size256, len(raw))
	}

	expected := blake2b.Sum256([]byte("file contents"))
	if got != hex.EncodeToString(expected[:]) {
		t.Fatalf("unexpected digest\nwant: %x\ngot:  %s", expected, got)
	}
}

func TestAcquireDigest_StreamingMatchesOneShot(t *testing.T) {
	h := AcquireDigest()
	defer ReleaseDigest(h)

	h.Write([]byte("part-one"))
	h.Write([]byte("part-two"))
	streamed := h.Sum(nil)

	oneShot := Digest([]byte("part-onepart-two"))
	if !bytes.Equal(streamed, oneShot) {
		t.Fatal("streamed digest differs from one-shot digest over the same bytes")
	}
}

func TestAcquireDigest_ResetBetweenUses(t *testing.T) {
	h := AcquireDigest()
	h.Write([]byte("stale state"))
	ReleaseDigest(h)

	// a fresh acquire must not see leftovers from the previous use
	h2 := AcquireDigest()
	defer ReleaseDigest(h2)
	h2.Write([]byte("clean"))

	expected := blake2b.Sum256([]byte("clean"))
	if !bytes.Equal(h2.Sum(nil), expected[:]) {
		t.Fatal("pooled hasher carried state between acquisitions")
	}
}
