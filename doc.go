package genskema

// Package genskema provides:
//
// - A closed schema node model (scalars, arrays, struct kinds, refinement,
//   branded names) where unsupported combinators are declared, not omitted
// - Decode/Encode between wire-shape and domain-shape values driven by the
//   node tree, with brand-name dispatch ahead of structural dispatch
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place branded codecs under codec/, the generator under arb/, schema
//   importing under yamlschema/, and the CLI under cmd/genskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  n := genskema.Interface(
//      genskema.F("id", genskema.Named(genskema.NameUUID, genskema.String())),
//      genskema.F("total", genskema.Named(genskema.NameCurrencyFromNumber, genskema.Number())),
//  )
//  wire, err := arb.Generate(n)
//  domain, err := genskema.Decode(ctx, n, wire)
//
