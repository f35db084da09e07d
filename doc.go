// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package glass implements an ordered map from 32-bit price keys to
// 64-bit quantities, purpose-built for client-side limit-order books.
//
// Internally it is a fixed 64-way radix trie over the key's bits, with
// every leaf also linked into a global doubly-linked list in ascending
// key order and chained into an intrusive hash table keyed by prefix.
// The trie is kept bounded at a fixed capacity; entries pushed out by
// that bound live on in a plain map and are swapped back in on demand.
//
// None of it is safe for concurrent use.
package glass
