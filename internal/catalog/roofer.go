package catalog

import (
	"github.com/shopspring/decimal"

	"devia/internal/devis"
)

// Roofer catalog keys. The extraction rules and the pricing rules both
// reference these constants, never raw strings.
const (
	KeyVerification   = "verification_forfait"
	KeyMiseEnPlace    = "mise_en_place"
	KeyDeplacement    = "deplacement_forfait"
	KeyFournitures    = "fournitures_forfait"
	KeyFaitageSec     = "faitage_sec_ml"
	KeyChassisBois    = "chassis_bois_ml"
	KeyPoseCloisoir   = "pose_closoir_ml"
	KeyPoseFaitieres  = "pose_faitieres_ml"
	KeyFaitageMaconne = "faitage_maconne_ml"
	KeyTuile          = "tuile_unite"
	KeyTuileCassee    = "tuile_cassee_unite"
	KeyDemoussage     = "demoussage_m2"
	KeyHydrofuge      = "traitement_hydrofuge_m2"
	KeyGouttiere      = "gouttiere_ml"
	KeyDeposeCheminee = "depose_cheminee"
)

func eur(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// rooferEntries is the default barème for the roofer trade, average prices
// excluding VAT. Listing order is the order shown in the catalog views.
var rooferEntries = []Entry{
	{KeyVerification, "Vérification avant travaux", devis.UnitForfait, eur("0.00")},
	{KeyMiseEnPlace, "Mise en place du chantier", devis.UnitForfait, eur("0.00")},
	{KeyDeplacement, "Déplacement / approvisionnement", devis.UnitForfait, eur("30.00")},
	{KeyFournitures, "Petites fournitures", devis.UnitForfait, eur("25.00")},

	// Dry-system ridge, typical decomposition.
	{KeyFaitageSec, "Dépose faîtage + évacuation (à sec)", devis.UnitML, eur("50.00")},
	{KeyChassisBois, "Création châssis bois sapin traité", devis.UnitML, eur("19.00")},
	{KeyPoseCloisoir, "Pose closoir ventilé (alu/butyl)", devis.UnitML, eur("18.00")},
	{KeyPoseFaitieres, "Repose faîtières (système à sec)", devis.UnitML, eur("22.00")},

	// Masonry ridge, rebedded in mortar.
	{KeyFaitageMaconne, "Réfection faîtage maçonné au mortier", devis.UnitML, eur("48.00")},

	// Roof surface treatment.
	{KeyDemoussage, "Démoussage toiture + rinçage", devis.UnitM2, eur("15.00")},
	{KeyHydrofuge, "Traitement hydrofuge incolore", devis.UnitM2, eur("12.00")},

	// Misc operations.
	{KeyTuile, "Remplacement de tuiles", devis.UnitPiece, eur("14.00")},
	{KeyTuileCassee, "Remplacement tuiles cassées", devis.UnitPiece, eur("12.00")},
	{KeyGouttiere, "Remplacement gouttière zinc", devis.UnitML, eur("35.00")},
	{KeyDeposeCheminee, "Dépose cheminée + reprise d'étanchéité", devis.UnitForfait, eur("450.00")},
}
